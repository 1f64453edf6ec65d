package types

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type IdeaCreateRequest struct {
	Name             string `json:"name" validate:"required"`
	Hypothesis       string `json:"hypothesis" validate:"required"`
	ValidationStatus string `json:"validationStatus"`
	Source           string `json:"source"`
}

type IdeaUpdateRequest struct {
	Name             *string `json:"name"`
	Hypothesis       *string `json:"hypothesis"`
	ValidationStatus *string `json:"validationStatus"`
	Source           *string `json:"source"`
}

// UpvoteRequest carries the count the caller had on screen when they
// clicked. The stored count becomes observed+1 regardless of concurrent
// writers.
type UpvoteRequest struct {
	ObservedUpvotes int `json:"observedUpvotes"`
}

type PortfolioCreateRequest struct {
	Code             string `json:"code" validate:"required"`
	OrganizationName string `json:"organizationName" validate:"required"`
	Name             string `json:"name" validate:"required"`
}

type ProductAddRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type OwnerAddRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type KBDocumentCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type KBDocumentUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
