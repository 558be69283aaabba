package reward

import "brainbox-retailplus/internal/pkg/errs"

var (
	ErrInvalidRewardType = errs.NewMarked("invalid reward type", errs.ErrValidation)
	ErrInvalidCustomer   = errs.NewMarked("customer id and name are required", errs.ErrValidation)
	ErrInvalidRequester  = errs.NewMarked("requesting staff is required", errs.ErrValidation)
	ErrInvalidFreeItem   = errs.NewMarked("free item requires a product and a positive quantity", errs.ErrValidation)
	ErrInvalidSaleItem   = errs.NewMarked("sale item requires a product and a positive quantity", errs.ErrValidation)
	ErrInvalidSaleID     = errs.NewMarked("sale id is required", errs.ErrValidation)
	ErrInvalidPeriod     = errs.NewMarked("report period end must not precede its start", errs.ErrValidation)
	ErrInvalidStatus     = errs.NewMarked("invalid status", errs.ErrValidation)

	ErrUnauthorizedApprover = errs.NewMarked("unauthorized: role cannot approve rewards", errs.ErrAuthorization)

	ErrRequestNotFound    = errs.NewMarked("reward request not found", errs.ErrNotFound)
	ErrRedemptionNotFound = errs.NewMarked("invalid redemption slip", errs.ErrNotFound)

	ErrAlreadyProcessed       = errs.NewMarked("reward request already processed", errs.ErrStateConflict)
	ErrRedemptionNotApproved  = errs.NewMarked("reward not approved or already used", errs.ErrStateConflict)
	ErrRedemptionNotApplied   = errs.NewMarked("reward has not been applied to a sale", errs.ErrStateConflict)
	ErrRedemptionAlreadyFinal = errs.NewMarked("reward already completed", errs.ErrStateConflict)
)
