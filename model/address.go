package model

// AddressEntity represents the user_address table entity
type AddressEntity struct {
	ID            uint64  `db:"id" json:"id"`
	UserID        uint64  `db:"user_id" json:"user_id"`
	GovernorateID uint64  `db:"governorate_id" json:"governorate_id"`
	AddressLine1  string  `db:"address_line1" json:"address_line1"`
	AddressLine2  *string `db:"address_line2" json:"address_line2,omitempty"`
	PostalCode    string  `db:"postal_code" json:"postal_code"`
}

// CreateAddressRequest for adding an address to the calling user
type CreateAddressRequest struct {
	GovernorateID uint64  `json:"governorate_id" validate:"required,gt=0"`
	AddressLine1  string  `json:"address_line1" validate:"required"`
	AddressLine2  *string `json:"address_line2" validate:"omitempty"`
	PostalCode    string  `json:"postal_code" validate:"required"`
}

// UpdateAddressRequest for updating an address owned by the calling user
type UpdateAddressRequest struct {
	AddressID     uint64  `json:"address_id" validate:"required,gt=0"`
	GovernorateID uint64  `json:"governorate_id" validate:"required,gt=0"`
	AddressLine1  string  `json:"address_line1" validate:"required"`
	AddressLine2  *string `json:"address_line2" validate:"omitempty"`
	PostalCode    string  `json:"postal_code" validate:"required"`
}
