// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/ianare/exif-go/tagdata"
)

const (
	iptcRecordMarker    = 0x1C
	iptcMetaDataBlockID = 0x0404 // Photoshop resource ID wrapping IPTC data within 8BIM
)

// decodeIPTC is the ambient sibling-format decoder: IPTC's own
// 5-byte-header/dataset stream, unrelated to TIFF/EXIF but carried in
// the same JPEG APP13 "Photoshop 3.0\x00" segment that this library
// already scans for XMP. It is driven independently of the EXIF IFD
// walker since IPTC has no IFD structure of its own.
func decodeIPTC(r ReadSeeker, logger Logger) (map[string]IfdTag, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, newInvalidExif("seek: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newInvalidExif("read: %v", err)
	}

	start := bytes.Index(data, []byte("8BIM"))
	if start < 0 {
		return nil, newExifNotFound("iptc: no 8BIM block found")
	}

	out := make(map[string]IfdTag)
	charset := ""
	iso88591 := charmap.ISO8859_1.NewDecoder()
	pos := start

	for pos+4 <= len(data) {
		if !bytes.Equal(data[pos:pos+4], []byte("8BIM")) {
			break
		}
		pos += 4
		if pos+2 > len(data) {
			break
		}
		identifier := binary.BigEndian.Uint16(data[pos : pos+2])
		pos += 2
		if pos >= len(data) {
			break
		}
		nameLen := int(data[pos])
		pos++
		pos += nameLen
		if (1+nameLen)%2 != 0 {
			pos++ // the length byte plus name bytes must total an even count
		}
		if pos+4 > len(data) {
			break
		}
		blockLen := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4
		blockEnd := pos + blockLen
		if blockEnd > len(data) {
			break
		}

		if identifier != iptcMetaDataBlockID {
			// Not the IPTC metadata resource; skip past it.
			pos = blockEnd
			if blockLen%2 != 0 {
				pos++
			}
			continue
		}

		block := data[pos:blockEnd]
		decodeIPTCBlock(block, out, &charset, iso88591, logger)

		pos = blockEnd
		if blockLen%2 != 0 {
			pos++
		}
	}

	return out, nil
}

func decodeIPTCBlock(block []byte, out map[string]IfdTag, charset *string, iso88591 *encoding.Decoder, logger Logger) {
	pos := 0
	repeated := make(map[string][]string)

	for pos+5 <= len(block) {
		if block[pos] != iptcRecordMarker {
			break
		}
		record := block[pos+1]
		dataset := block[pos+2]
		size := int(binary.BigEndian.Uint16(block[pos+3 : pos+5]))
		pos += 5
		if pos+size > len(block) {
			logger.Printf("iptc: record %d dataset %d truncated", record, dataset)
			break
		}
		payload := block[pos : pos+size]
		pos += size

		field, known := tagdata.IPTCFields[dataset]
		name := field.Name
		if !known {
			name = fmt.Sprintf("Unknown%d", dataset)
			field = tagdata.IPTCField{Name: name, Format: "string"}
		}

		var value string
		switch field.Format {
		case "B":
			value = stringifyOne(beUint(payload))
		default:
			b := payload
			if *charset == "" || *charset == "ISO-8859-1" {
				if decoded, err := iso88591.Bytes(b); err == nil {
					b = decoded
				}
			}
			value = strings.TrimRight(string(b), "\x00")
		}

		if record == 1 && dataset == 90 {
			*charset = value
		}

		if field.Repeatable {
			repeated[name] = append(repeated[name], value)
			continue
		}

		out[tagKey("IPTC", name)] = IfdTag{
			Printable:       value,
			FieldType:       Proprietary,
			Values:          value,
			PreferPrintable: true,
		}
	}

	for name, values := range repeated {
		printable := strings.Join(values, ", ")
		out[tagKey("IPTC", name)] = IfdTag{
			Printable:       printable,
			FieldType:       Proprietary,
			Values:          values,
			PreferPrintable: true,
		}
	}
}

func beUint(b []byte) int64 {
	var v int64
	for _, by := range b {
		v = v<<8 | int64(by)
	}
	return v
}
