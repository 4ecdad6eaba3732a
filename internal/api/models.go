package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
)

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateProfileRequest is the body of PATCH /users/current. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=1,max=100"`
}

// CreateContactRequest is the body of POST /contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,max=200,email|len=0"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
}

// UpdateContactRequest is the body of PUT /contacts/{contactId}. Absent
// fields are left unchanged.
type UpdateContactRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,max=200,email|len=0"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
}

// CreateAddressRequest is the body of POST /contacts/{contactId}/addresses.
type CreateAddressRequest struct {
	Street     *string `json:"street"      validate:"omitempty,max=200"`
	City       *string `json:"city"        validate:"omitempty,max=100"`
	Province   *string `json:"province"    validate:"omitempty,max=100"`
	Country    string  `json:"country"     validate:"required,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=10"`
}

// UpdateAddressRequest is the body of PUT
// /contacts/{contactId}/addresses/{addressId}. Absent fields are left
// unchanged.
type UpdateAddressRequest struct {
	Street     *string `json:"street"      validate:"omitempty,max=200"`
	City       *string `json:"city"        validate:"omitempty,max=100"`
	Province   *string `json:"province"    validate:"omitempty,max=100"`
	Country    *string `json:"country"     validate:"omitempty,min=1,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=10"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

// LoginResponse is a user plus the session token.
type LoginResponse struct {
	UserResponse
	Token string `json:"token"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode *string   `json:"postal_code"`
}

// PageMeta describes one page of search results.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// SearchContactsResponse is the body of GET /contacts.
type SearchContactsResponse struct {
	Data []ContactResponse `json:"data"`
	Meta PageMeta          `json:"meta"`
}

func (req CreateContactRequest) fields() domain.ContactFields {
	return domain.ContactFields{
		FirstName: &req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

func (req UpdateContactRequest) fields() domain.ContactFields {
	return domain.ContactFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

func (req CreateAddressRequest) fields() domain.AddressFields {
	return domain.AddressFields{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    &req.Country,
		PostalCode: req.PostalCode,
	}
}

func (req UpdateAddressRequest) fields() domain.AddressFields {
	return domain.AddressFields{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username, Name: user.Name}
}

func contactToResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func addressToResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func addressesToResponse(addresses []*domain.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, addressToResponse(a))
	}
	return out
}

func searchToResponse(result *service.SearchResult) SearchContactsResponse {
	data := make([]ContactResponse, 0, len(result.Contacts))
	for _, c := range result.Contacts {
		data = append(data, contactToResponse(c))
	}
	return SearchContactsResponse{
		Data: data,
		Meta: PageMeta{
			CurrentPage: result.Page,
			PerPage:     result.Size,
			Total:       result.Total,
			LastPage:    result.LastPage,
		},
	}
}
