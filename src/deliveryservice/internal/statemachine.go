package internal

import (
	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

// The delivery lifecycle is a straight line:
//
//	RIDER_UNACCEPT -> RIDER_ACCEPTED -> RIDER_PICKED_UP -> RIDER_DELIVERED
//
// ValidateTransition rejects redundant and backward transitions so that an
// at-least-once event stream cannot move a delivery backwards. Skipping
// forward (UNACCEPT -> PICKED_UP) is allowed: riders report status over a
// lossy channel and a missed report must not wedge the order.
func ValidateTransition(current, target pb.DeliveryStatus) error {
	switch target {
	case pb.DeliveryStatus_RIDER_UNACCEPT:
		// Orders start unaccepted; nothing moves them back.
		return &TransitionError{Reason: "order cannot return to unaccepted"}
	case pb.DeliveryStatus_RIDER_ACCEPTED:
		if current == pb.DeliveryStatus_RIDER_ACCEPTED ||
			current == pb.DeliveryStatus_RIDER_PICKED_UP ||
			current == pb.DeliveryStatus_RIDER_DELIVERED {
			return &TransitionError{Reason: "order has already been accepted"}
		}
	case pb.DeliveryStatus_RIDER_PICKED_UP:
		if current == pb.DeliveryStatus_RIDER_PICKED_UP ||
			current == pb.DeliveryStatus_RIDER_DELIVERED {
			return &TransitionError{Reason: "order has already picked up"}
		}
	case pb.DeliveryStatus_RIDER_DELIVERED:
		if current == pb.DeliveryStatus_RIDER_DELIVERED {
			return &TransitionError{Reason: "order has already been delivered"}
		}
	}
	return nil
}

// ParseStatus maps a canonical status name back to the enum. Anything
// outside the four names is ErrInvalidStatus.
func ParseStatus(name string) (pb.DeliveryStatus, error) {
	v, ok := pb.DeliveryStatus_value[name]
	if !ok {
		return pb.DeliveryStatus_RIDER_UNACCEPT, ErrInvalidStatus
	}
	return pb.DeliveryStatus(v), nil
}
