// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	xmpOpenTag  = []byte("<x:xmpmeta")
	xmpCloseTag = []byte("</x:xmpmeta>")
)

// extractXMP is C9: scan the whole stream for a literal
// "<x:xmpmeta>...</x:xmpmeta>" packet (XMP can appear as a JPEG APP1
// segment, a PNG iTXt chunk, or a standalone sidecar; rather than
// tracking each container's framing separately, scanning the decoded
// byte stream for the packet's own delimiters finds it regardless of
// carrier). The match is pretty-printed when it parses as XML and
// stored verbatim otherwise.
func extractXMP(r ReadSeeker, logger Logger) (string, bool) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", false
	}
	data, err := io.ReadAll(r)
	if err != nil {
		logger.Printf("xmp: failed to read stream: %v", err)
		return "", false
	}

	start := bytes.Index(data, xmpOpenTag)
	if start < 0 {
		return "", false
	}
	endTagPos := bytes.Index(data[start:], xmpCloseTag)
	if endTagPos < 0 {
		return "", false
	}
	end := start + endTagPos + len(xmpCloseTag)
	packet := data[start:end]

	if !utf8.Valid(packet) {
		logger.Printf("xmp: packet is not valid utf-8, storing raw")
		return string(packet), true
	}

	pretty, err := prettyPrintXML(packet)
	if err != nil {
		logger.Printf("xmp: failed to pretty-print, storing raw: %v", err)
		return string(packet), true
	}
	return pretty, true
}

// prettyPrintXML re-encodes the XMP packet with indentation, matching
// how a structured RDF reader would normally surface it. A decode
// failure is returned as an error, and extractXMP then stores the
// malformed-but-present packet unprettified.
func prettyPrintXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if err := enc.EncodeToken(tok); err != nil {
			return "", err
		}
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", newInvalidExif("xmp: empty packet")
	}
	return strings.TrimSpace(buf.String()), nil
}
