package internal

import (
	"math/rand"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// Geocoder resolves an address to a geographic point. A nil result means
// the address could not be resolved.
//
// Two stubs exist until real geocoding lands: the district table used by the
// event path and the random generator used by the RPC path.
type Geocoder interface {
	Geocode(addr *pb.Address) *pb.Point
}

// districts maps the Chiang Mai districts the stub knows about to fixed
// coordinates.
var districts = map[string]*pb.Point{
	"Mueang":    {Latitude: 18.7883, Longitude: 98.9853},
	"Hang Dong": {Latitude: 18.6870, Longitude: 98.8897},
	"San Sai":   {Latitude: 18.8578, Longitude: 99.0631},
	"Mae Rim":   {Latitude: 18.8998, Longitude: 98.9311},
	"Doi Saket": {Latitude: 18.8482, Longitude: 99.1403},
}

// DistrictGeocoder resolves addresses through the fixed district table and
// returns nil for districts it does not know.
type DistrictGeocoder struct{}

func NewDistrictGeocoder() *DistrictGeocoder { return &DistrictGeocoder{} }

func (g *DistrictGeocoder) Geocode(addr *pb.Address) *pb.Point {
	point, ok := districts[addr.GetDistrict()]
	if !ok {
		return nil
	}
	return &pb.Point{Latitude: point.Latitude, Longitude: point.Longitude}
}

// RandomGeocoder ignores the address and returns a point within roughly
// 25 km of (0, 0): latitude offset up to 0.225 degrees, longitude up to
// 0.25. It never fails, which suits the fee RPC where any address must
// produce an answer.
type RandomGeocoder struct{}

func NewRandomGeocoder() *RandomGeocoder { return &RandomGeocoder{} }

func (g *RandomGeocoder) Geocode(addr *pb.Address) *pb.Point {
	const (
		maxLatOffset = 0.225
		maxLngOffset = 0.25
	)
	return &pb.Point{
		Latitude:  rand.Float64()*2*maxLatOffset - maxLatOffset,
		Longitude: rand.Float64()*2*maxLngOffset - maxLngOffset,
	}
}
