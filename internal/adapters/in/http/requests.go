package http

import "github.com/go-playground/validator/v10"

// CustomValidator plugs go-playground/validator into echo's binding pipeline.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates the request validator used by the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

type createOrderRequest struct {
	FileID     string `json:"fileId" validate:"required"`
	OrderType  string `json:"orderType" validate:"required"`
	DeliveryTs string `json:"deliveryTs" validate:"required"`
}

type acceptScreeningRequest struct {
	PWER int `json:"pwer" validate:"min=0,max=100"`
}

type reportFileRequest struct {
	Option  string `json:"option" validate:"required"`
	Comment string `json:"comment"`
	Auto    bool   `json:"auto"`
}

type assignRequest struct {
	TranscriberID string `json:"transcriberId" validate:"required,uuid"`
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type unassignJobRequest struct {
	TargetStatus string `json:"targetStatus" validate:"required"`
	Reason       string `json:"reason"`
}

type reReviewRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type postponeRequest struct {
	Days int `json:"days" validate:"required,min=1"`
}

type difficultyRequest struct {
	Bonus int `json:"bonus" validate:"min=0"`
}

type priorityRequest struct {
	Priority int `json:"priority" validate:"required,min=1"`
}
