package internal

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

var (
	mueang   = &pb.Point{Latitude: 18.7883, Longitude: 98.9853}
	hangDong = &pb.Point{Latitude: 18.6870, Longitude: 98.8897}
	sanSai   = &pb.Point{Latitude: 18.8578, Longitude: 99.0631}
	doiSaket = &pb.Point{Latitude: 18.8482, Longitude: 99.1403}
)

// pointAtKm returns a point on the equator exactly km kilometers east of
// the origin, so fee tests can pick distances directly.
func pointAtKm(km float64) *pb.Point {
	return &pb.Point{Latitude: 0, Longitude: km / earthRadiusKm * 180 / math.Pi}
}

func TestHaversineDistanceSymmetricAndNonNegative(t *testing.T) {
	pairs := [][2]*pb.Point{
		{mueang, hangDong},
		{sanSai, doiSaket},
		{mueang, &pb.Point{Latitude: 50, Longitude: 50}},
		{&pb.Point{Latitude: -33.9, Longitude: 151.2}, &pb.Point{Latitude: 51.5, Longitude: -0.1}},
	}
	for _, pair := range pairs {
		d1 := HaversineDistance(pair[0], pair[1])
		d2 := HaversineDistance(pair[1], pair[0])
		assert.GreaterOrEqual(t, d1, 0.0)
		assert.InDelta(t, d1, d2, 1e-9)
	}

	assert.Zero(t, HaversineDistance(mueang, mueang))
}

func TestHaversineDistanceKnownPairs(t *testing.T) {
	assert.InDelta(t, 15.1, HaversineDistance(mueang, hangDong), 0.1)
	assert.InDelta(t, 8.2, HaversineDistance(sanSai, doiSaket), 0.2)
}

func TestCalcDeliveryFeeBrackets(t *testing.T) {
	tests := []struct {
		km   float64
		want int32
	}{
		{0, 0},
		{3, 0},
		{4.999, 0},
		{5.001, 50},
		{9.999, 50},
		{10.001, 100},
		{24.999, 100},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.km, 'f', -1, 64), func(t *testing.T) {
			fee, err := CalcDeliveryFee(pointAtKm(0), pointAtKm(tt.km))
			require.NoError(t, err)
			assert.Equal(t, tt.want, fee)
		})
	}
}

func TestCalcDeliveryFeeMonotone(t *testing.T) {
	var last int32 = -1
	for km := 0.25; km < 25; km += 0.5 {
		fee, err := CalcDeliveryFee(pointAtKm(0), pointAtKm(km))
		require.NoError(t, err)
		assert.Contains(t, []int32{0, 50, 100}, fee)
		assert.GreaterOrEqual(t, fee, last, "fee must not decrease with distance")
		last = fee
	}
}

func TestCalcDeliveryFeeAcrossTown(t *testing.T) {
	// Mueang to Hang Dong is about 15.1 km, the top bracket.
	fee, err := CalcDeliveryFee(mueang, hangDong)
	require.NoError(t, err)
	assert.Equal(t, int32(100), fee)

	// San Sai to Doi Saket is about 8.2 km, the middle bracket.
	fee, err = CalcDeliveryFee(sanSai, doiSaket)
	require.NoError(t, err)
	assert.Equal(t, int32(50), fee)
}

func TestCalcDeliveryFeeTooFar(t *testing.T) {
	_, err := CalcDeliveryFee(mueang, &pb.Point{Latitude: 50, Longitude: 50})
	require.Error(t, err)
	assert.EqualError(t, err, "distance must be between 0km and 25km")

	_, err = CalcDeliveryFee(pointAtKm(0), pointAtKm(25.001))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCalcNearestRiders(t *testing.T) {
	riders := CalcNearestRiders()
	require.Len(t, riders, 5)
	for _, r := range riders {
		assert.NotNil(t, r)
	}
}

func placedOrder() *pb.PlaceOrder {
	return &pb.PlaceOrder{
		OrderId:         "ord-1",
		CustomerId:      "cus-1",
		MerchantId:      "mer-1",
		MerchantAddress: &pb.Address{District: "Mueang"},
		CustomerAddress: &pb.Address{District: "Hang Dong"},
	}
}

func TestPrepareOrderDelivery(t *testing.T) {
	riders, pickup, err := PrepareOrderDelivery(placedOrder(), NewDistrictGeocoder())
	require.NoError(t, err)

	assert.Len(t, riders, 5)

	code, convErr := strconv.Atoi(pickup.PickupCode)
	require.NoError(t, convErr)
	assert.Len(t, pickup.PickupCode, 3)
	assert.GreaterOrEqual(t, code, 100)
	assert.LessOrEqual(t, code, 999)

	require.NotNil(t, pickup.PickupLocation)
	require.NotNil(t, pickup.DropOffLocation)
	assert.Equal(t, mueang.Latitude, pickup.PickupLocation.Latitude)
	assert.Equal(t, hangDong.Latitude, pickup.DropOffLocation.Latitude)
}

func TestPrepareOrderDeliveryCodeRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		_, pickup, err := PrepareOrderDelivery(placedOrder(), NewDistrictGeocoder())
		require.NoError(t, err)
		code, convErr := strconv.Atoi(pickup.PickupCode)
		require.NoError(t, convErr)
		require.GreaterOrEqual(t, code, 100)
		require.LessOrEqual(t, code, 999)
	}
}

func TestPrepareOrderDeliveryMissingAddresses(t *testing.T) {
	order := placedOrder()
	order.MerchantAddress = nil
	_, _, err := PrepareOrderDelivery(order, NewDistrictGeocoder())
	assert.ErrorIs(t, err, ErrMissingMerchantAddress)

	order = placedOrder()
	order.CustomerAddress = nil
	_, _, err = PrepareOrderDelivery(order, NewDistrictGeocoder())
	assert.ErrorIs(t, err, ErrMissingUserAddress)
}

func TestPrepareOrderDeliveryUnknownDistrict(t *testing.T) {
	order := placedOrder()
	order.MerchantAddress = &pb.Address{District: "Atlantis"}

	_, pickup, err := PrepareOrderDelivery(order, NewDistrictGeocoder())
	require.NoError(t, err, "unknown districts must not fail the order")
	assert.Nil(t, pickup.PickupLocation)
	assert.NotNil(t, pickup.DropOffLocation)
}

func TestDistrictGeocoder(t *testing.T) {
	g := NewDistrictGeocoder()

	point := g.Geocode(&pb.Address{District: "San Sai"})
	require.NotNil(t, point)
	assert.Equal(t, sanSai.Latitude, point.Latitude)
	assert.Equal(t, sanSai.Longitude, point.Longitude)

	assert.Nil(t, g.Geocode(&pb.Address{District: "Atlantis"}))
}

func TestRandomGeocoderBounds(t *testing.T) {
	g := NewRandomGeocoder()
	for i := 0; i < 200; i++ {
		point := g.Geocode(&pb.Address{District: "anything"})
		require.NotNil(t, point)
		assert.LessOrEqual(t, math.Abs(point.Latitude), 0.225)
		assert.LessOrEqual(t, math.Abs(point.Longitude), 0.25)
	}
}
