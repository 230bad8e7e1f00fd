// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifread

import (
	"strings"
	"time"
)

// GetLatLong is a supplemented convenience projection: EXIF stores
// latitude/longitude as three Rationals (degrees, minutes, seconds)
// plus a hemisphere reference letter; most callers just want signed
// decimal degrees.
func GetLatLong(result map[string]IfdTag) (lat, lon float64, ok bool) {
	latVal, latOK := degreesToDecimal(result, "GPSLatitude")
	lonVal, lonOK := degreesToDecimal(result, "GPSLongitude")
	if !latOK || !lonOK {
		return 0, 0, false
	}

	if ref, refOK := result[tagKey("GPS", "GPSLatitudeRef")]; refOK {
		if s, sok := ref.Str(); sok && strings.EqualFold(strings.TrimSpace(s), "S") {
			latVal = -latVal
		}
	}
	if ref, refOK := result[tagKey("GPS", "GPSLongitudeRef")]; refOK {
		if s, sok := ref.Str(); sok && strings.EqualFold(strings.TrimSpace(s), "W") {
			lonVal = -lonVal
		}
	}

	return latVal, lonVal, true
}

func degreesToDecimal(result map[string]IfdTag, tagName string) (float64, bool) {
	tag, ok := result[tagKey("GPS", tagName)]
	if !ok {
		return 0, false
	}
	ratios, ok := tag.Ratios()
	if !ok || len(ratios) != 3 {
		return 0, false
	}
	deg := ratios[0].Float64()
	min := ratios[1].Float64()
	sec := ratios[2].Float64()
	return deg + min/60 + sec/3600, true
}

// gpsDateLayout matches GPSDateStamp ("YYYY:MM:DD"); GetDateTime adds
// GPSTimeStamp's three Rationals (hour, minute, second) to it.
const gpsDateLayout = "2006:01:02"

// GetDateTime is a supplemented convenience projection returning the
// best available capture timestamp: DateTimeOriginal when present,
// falling back to DateTime, then DateTimeDigitized, and finally to the
// GPS date/time pair (which is UTC, unlike the other three).
func GetDateTime(result map[string]IfdTag) (time.Time, bool) {
	for _, key := range []string{
		tagKey("EXIF", "DateTimeOriginal"),
		tagKey("Image", "DateTime"),
		tagKey("EXIF", "DateTimeDigitized"),
	} {
		if tag, ok := result[key]; ok {
			if s, sok := tag.Str(); sok {
				if t, err := time.Parse(dateTimeLayout, s); err == nil {
					return t, true
				}
			}
		}
	}

	dateTag, dok := result[tagKey("GPS", "GPSDateStamp")]
	timeTag, tok := result[tagKey("GPS", "GPSTimeStamp")]
	if !dok || !tok {
		return time.Time{}, false
	}
	dateStr, sok := dateTag.Str()
	if !sok {
		return time.Time{}, false
	}
	ratios, rok := timeTag.Ratios()
	if !rok || len(ratios) != 3 {
		return time.Time{}, false
	}
	base, err := time.Parse(gpsDateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	h := int(ratios[0].Float64())
	m := int(ratios[1].Float64())
	s := int(ratios[2].Float64())
	return time.Date(base.Year(), base.Month(), base.Day(), h, m, s, 0, time.UTC), true
}
