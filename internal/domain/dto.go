package domain

// ExpenseDTO is the wire representation of an expense
type ExpenseDTO struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Amount    float64  `json:"amount"`
	Category  string   `json:"category"`
	Date      DateOnly `json:"date"`
	CreatedAt string   `json:"createdAt"` // ISO 8601
	UpdatedAt string   `json:"updatedAt"` // ISO 8601
}

// CreateExpenseRequest carries a new expense. All four fields are required.
type CreateExpenseRequest struct {
	Name     string    `json:"name" validate:"required"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	Category string    `json:"category" validate:"required"`
	Date     *DateOnly `json:"date" validate:"required"`
}

// UpdateExpenseRequest carries a partial update. Only fields present in the
// body are applied; provided fields must still hold valid values.
type UpdateExpenseRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Amount   *float64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category *string   `json:"category,omitempty" validate:"omitempty,min=1"`
	Date     *DateOnly `json:"date,omitempty"`
}

// ErrorResponse is the error body for all failure responses. The error field
// is only populated for server-side faults, and is opaque to clients.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
