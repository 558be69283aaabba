package reward

type RewardType string

const (
	TypeCashDiscount  RewardType = "cash_discount"
	TypeFreeItems     RewardType = "free_items"
	TypePercentageOff RewardType = "percentage_off"
)

// Types lists reward types in report order.
var Types = []RewardType{TypeCashDiscount, TypeFreeItems, TypePercentageOff}

func (t RewardType) String() string {
	return string(t)
}

func (t RewardType) IsValid() bool {
	switch t {
	case TypeCashDiscount, TypeFreeItems, TypePercentageOff:
		return true
	default:
		return false
	}
}

func NewRewardType(s string) (RewardType, error) {
	t := RewardType(s)
	if !t.IsValid() {
		return "", ErrInvalidRewardType
	}
	return t, nil
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	// RequestRejected is part of the stored vocabulary; no transition produces it yet.
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string {
	return string(s)
}

func NewRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestPending, RequestApproved, RequestRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type RedemptionStatus string

const (
	RedemptionApproved  RedemptionStatus = "approved"
	RedemptionApplied   RedemptionStatus = "applied"
	RedemptionCompleted RedemptionStatus = "completed"
)

func (s RedemptionStatus) String() string {
	return string(s)
}

func NewRedemptionStatus(s string) (RedemptionStatus, error) {
	switch st := RedemptionStatus(s); st {
	case RedemptionApproved, RedemptionApplied, RedemptionCompleted:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
