// Package internal holds the delivery domain: the pure core (distance, fee
// brackets, pickup preparation), the state machine guarding status
// transitions, the event handlers, the RPC service and the storage and cache
// implementations behind them.
package internal

import (
	"math"
	"math/rand"
	"strconv"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// earthRadiusKm is the earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// maxDeliveryKm bounds the distance the service is willing to price.
const maxDeliveryKm = 25.0

// PickupInfo is what a rider needs to collect an order: the three-digit code
// authenticating the pickup and the two endpoints. Either location may be
// nil when the address could not be geocoded.
type PickupInfo struct {
	PickupCode      string
	PickupLocation  *pb.Point
	DropOffLocation *pb.Point
}

// HaversineDistance returns the great-circle distance between p1 and p2 in
// kilometers.
func HaversineDistance(p1, p2 *pb.Point) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lon1 := p1.Longitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	lon2 := p2.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// CalcDeliveryFee prices the trip between the customer and the merchant.
// The fee is 0 up to 5 km, 50 up to 10 km and 100 up to 25 km; anything
// farther is ErrOutOfRange.
func CalcDeliveryFee(customer, merchant *pb.Point) (int32, error) {
	distance := HaversineDistance(customer, merchant)

	if distance < 0 || distance > maxDeliveryKm {
		return 0, ErrOutOfRange
	}

	switch {
	case distance <= 5:
		return 0, nil
	case distance <= 10:
		return 50, nil
	default:
		return 100, nil
	}
}

// CalcNearestRiders returns the candidate riders for an order.
//
// TODO: rank real riders by proximity once rider locations are tracked; for
// now every order gets five placeholder candidates.
func CalcNearestRiders() []*pb.Rider {
	riders := make([]*pb.Rider, 5)
	for i := range riders {
		riders[i] = &pb.Rider{}
	}
	return riders
}

// PrepareOrderDelivery turns a placed order into the candidate riders and
// the pickup details for its delivery. The merchant and customer addresses
// are required; geocoding is allowed to fail (nil location) since unknown
// districts are expected until real geocoding lands.
func PrepareOrderDelivery(order *pb.PlaceOrder, geocoder Geocoder) ([]*pb.Rider, *PickupInfo, error) {
	if order.GetMerchantAddress() == nil {
		return nil, nil, ErrMissingMerchantAddress
	}
	if order.GetCustomerAddress() == nil {
		return nil, nil, ErrMissingUserAddress
	}

	pickup := &PickupInfo{
		PickupCode:      randomPickupCode(),
		PickupLocation:  geocoder.Geocode(order.GetMerchantAddress()),
		DropOffLocation: geocoder.Geocode(order.GetCustomerAddress()),
	}

	return CalcNearestRiders(), pickup, nil
}

// randomPickupCode returns a uniform three-digit code in [100, 999].
// Uniqueness across orders is not guaranteed; the code authenticates a
// pickup only together with the order id.
func randomPickupCode() string {
	return strconv.Itoa(rand.Intn(900) + 100)
}
