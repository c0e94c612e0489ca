// Package bankprofile holds per-issuer extraction settings as data. A small
// number of issuers need special handling: a fixed column layout for
// positional reconstruction, an image-only default that routes straight to
// OCR, cell offsets into the recognized grid, or a nonstandard mortgage
// label. Keeping these in a profile table keyed by bank code means a new
// quirky issuer is a data entry, not a code branch.
package bankprofile
