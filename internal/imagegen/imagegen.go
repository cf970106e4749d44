// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagegen builds QR-code and barcode image requests against public
// rendering endpoints and downloads the rendered images.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/toolshed/internal/httputil"
	"github.com/pdiddy/toolshed/pkg/types"
)

const (
	// DefaultQREndpoint renders QR codes as PNG.
	DefaultQREndpoint = "https://api.qrserver.com/v1/create-qr-code/"

	// DefaultBarcodeEndpoint renders linear barcodes as PNG.
	DefaultBarcodeEndpoint = "https://barcode.tec-it.com/barcode.ashx"
)

var (
	// ErrEmptyPayload is returned when there is nothing to encode.
	ErrEmptyPayload = errors.New("please enter text or URL")

	// ErrUnknownSymbology is returned for a barcode type other than
	// code128, code39, or ean13.
	ErrUnknownSymbology = errors.New("unknown barcode type")

	// ErrUnknownSecurity is returned for a WiFi security mode other than
	// WPA, WEP, or nopass.
	ErrUnknownSecurity = errors.New("unknown wifi security")
)

// Symbology names a barcode encoding.
type Symbology string

const (
	Code128 Symbology = "code128"
	Code39  Symbology = "code39"
	EAN13   Symbology = "ean13"
)

// WiFi describes a network for a WiFi-join QR code.
type WiFi struct {
	SSID     string
	Password string
	Security string
}

// TextPayload returns text (a URL or plain text) unchanged, rejecting blank
// input.
func TextPayload(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPayload
	}
	return text, nil
}

// VCardPayload wraps a full name in a minimal vCard 3.0 record.
func VCardPayload(fullName string) (string, error) {
	if strings.TrimSpace(fullName) == "" {
		return "", ErrEmptyPayload
	}
	return "BEGIN:VCARD\nVERSION:3.0\nFN:" + fullName + "\nEND:VCARD", nil
}

// Payload renders w in the WIFI: URI format understood by phone cameras.
func (w WiFi) Payload() (string, error) {
	sec := w.Security
	if sec == "" {
		sec = "WPA"
	}
	switch sec {
	case "WPA", "WEP", "nopass":
	default:
		return "", fmt.Errorf("%w %q: use WPA, WEP, or nopass", ErrUnknownSecurity, w.Security)
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", sec, w.SSID, w.Password), nil
}

// Client builds and fetches image URLs.
type Client struct {
	cfg  types.ImageConfig
	http *http.Client
}

// NewClient returns a Client for cfg. Empty endpoints fall back to the
// public defaults.
func NewClient(cfg types.ImageConfig) *Client {
	if cfg.QREndpoint == "" {
		cfg.QREndpoint = DefaultQREndpoint
	}
	if cfg.BarcodeEndpoint == "" {
		cfg.BarcodeEndpoint = DefaultBarcodeEndpoint
	}
	if cfg.QRSize <= 0 {
		cfg.QRSize = 300
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

// QRURL returns the image URL for payload at size×size pixels; a size of
// zero uses the configured default.
func (c *Client) QRURL(payload string, size int) (string, error) {
	if strings.TrimSpace(payload) == "" {
		return "", ErrEmptyPayload
	}
	if size <= 0 {
		size = c.cfg.QRSize
	}
	u, err := url.Parse(c.cfg.QREndpoint)
	if err != nil {
		return "", fmt.Errorf("parsing QR endpoint: %w", err)
	}
	q := u.Query()
	dim := strconv.Itoa(size)
	q.Set("size", dim+"x"+dim)
	q.Set("data", payload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// BarcodeURL returns the image URL for text in the given symbology.
func (c *Client) BarcodeURL(text string, sym Symbology) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPayload
	}
	switch sym {
	case Code128, Code39, EAN13:
	default:
		return "", fmt.Errorf("%w %q: use code128, code39, or ean13", ErrUnknownSymbology, sym)
	}
	u, err := url.Parse(c.cfg.BarcodeEndpoint)
	if err != nil {
		return "", fmt.Errorf("parsing barcode endpoint: %w", err)
	}
	q := u.Query()
	q.Set("data", text)
	q.Set("code", string(sym))
	q.Set("translate", "yes")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch downloads the image at imageURL into w and returns the number of
// bytes written. Throttled requests are retried; any other non-200 status
// is an error.
func (c *Client) Fetch(ctx context.Context, imageURL string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return 0, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetching image: unexpected status %d", resp.StatusCode)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("reading image body: %w", err)
	}
	return n, nil
}
