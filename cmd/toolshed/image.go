// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/toolshed/internal/imagegen"
)

var qrCmd = &cobra.Command{
	Use:   "qr [text...]",
	Short: "Build a QR code for a URL, text, contact, or WiFi network",
	Long: `QR builds the payload for the chosen --type and prints the image URL
from the configured rendering service. With --out the PNG is downloaded
to that path instead.

Types:
  url, text   encode the input as given
  vcard       encode the input as a contact's full name
  wifi        encode --ssid, --password, and --security (WPA, WEP, nopass)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")
		size, _ := cmd.Flags().GetInt("size")

		var payload string
		var err error
		switch strings.ToLower(kind) {
		case "url", "text":
			payload, err = imagegen.TextPayload(strings.Join(args, " "))
		case "vcard":
			payload, err = imagegen.VCardPayload(strings.Join(args, " "))
		case "wifi":
			ssid, _ := cmd.Flags().GetString("ssid")
			pass, _ := cmd.Flags().GetString("password")
			sec, _ := cmd.Flags().GetString("security")
			payload, err = imagegen.WiFi{SSID: ssid, Password: pass, Security: sec}.Payload()
		default:
			return fmt.Errorf("unknown QR type %q: use url, text, vcard, or wifi", kind)
		}
		if err != nil {
			return err
		}

		client := imagegen.NewClient(cfg.Image)
		imageURL, err := client.QRURL(payload, size)
		if err != nil {
			return err
		}
		return emitImage(cmd, client, imageURL)
	},
}

var barcodeCmd = &cobra.Command{
	Use:   "barcode <text>",
	Short: "Build a Code 128, Code 39, or EAN-13 barcode",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")
		client := imagegen.NewClient(cfg.Image)
		imageURL, err := client.BarcodeURL(strings.Join(args, " "), imagegen.Symbology(strings.ToLower(kind)))
		if err != nil {
			return err
		}
		return emitImage(cmd, client, imageURL)
	},
}

// emitImage prints imageURL, or downloads it when --out is set.
func emitImage(cmd *cobra.Command, client *imagegen.Client, imageURL string) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), imageURL)
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	n, err := client.Fetch(cmd.Context(), imageURL, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", out, n)
	return nil
}

func init() {
	qrCmd.Flags().String("type", "url", "payload type: url, text, vcard, or wifi")
	qrCmd.Flags().String("ssid", "", "WiFi network name")
	qrCmd.Flags().String("password", "", "WiFi password")
	qrCmd.Flags().String("security", "WPA", "WiFi security: WPA, WEP, or nopass")
	qrCmd.Flags().Int("size", 0, "image edge in pixels (default from image.qr_size)")
	qrCmd.Flags().StringP("out", "o", "", "download the PNG to this path")

	barcodeCmd.Flags().String("type", "code128", "barcode type: code128, code39, or ean13")
	barcodeCmd.Flags().StringP("out", "o", "", "download the PNG to this path")

	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(barcodeCmd)
}
