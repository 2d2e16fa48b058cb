// Package geo implements the client-side distance handling the directory UI
// uses: result cards are sorted by great-circle distance from the caller's
// reported position. Distances are in miles, matching the card labels.
package geo

import (
	"math"
	"sort"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

const earthRadiusMiles = 3958.8

// Distance returns the great-circle distance in miles between two points
// using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// SortByDistance orders businesses by distance from (lat, lng), nearest
// first. Listings without coordinates keep their relative order and sort
// after every located listing. The sort is stable so equal distances keep the
// API's ranking.
func SortByDistance(businesses []domain.Business, lat, lng float64) {
	sort.SliceStable(businesses, func(i, j int) bool {
		di, iOK := distanceTo(&businesses[i], lat, lng)
		dj, jOK := distanceTo(&businesses[j], lat, lng)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return di < dj
	})
}

func distanceTo(b *domain.Business, lat, lng float64) (float64, bool) {
	if b.Latitude == nil || b.Longitude == nil {
		return 0, false
	}
	return Distance(lat, lng, *b.Latitude, *b.Longitude), true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
