//go:build ocr

// Package ocr wraps the Tesseract engine via gosseract for reading scanned
// disclosure pages. Recognizing the Traditional Chinese tables requires the
// chi_tra language pack alongside eng.
//
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-chi-tra
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// PageSegMode controls how Tesseract analyzes the page layout.
type PageSegMode = gosseract.PageSegMode

// Page segmentation modes.
const (
	PSM_AUTO         PageSegMode = gosseract.PSM_AUTO
	PSM_SINGLE_BLOCK PageSegMode = gosseract.PSM_SINGLE_BLOCK
	PSM_SINGLE_LINE  PageSegMode = gosseract.PSM_SINGLE_LINE
	PSM_SINGLE_WORD  PageSegMode = gosseract.PSM_SINGLE_WORD
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g., "chi_tra+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// SetWhitelist restricts recognition to the given characters. Numeric table
// cells are read with a digit whitelist so stray strokes cannot become
// letters. Pass the empty string to clear the restriction.
func (c *Client) SetWhitelist(chars string) error {
	return c.client.SetWhitelist(chars)
}
