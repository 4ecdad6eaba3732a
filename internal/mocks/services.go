package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// UserService is a testify mock of service.UserService.
type UserService struct {
	mock.Mock
}

var _ service.UserService = (*UserService)(nil)

func (m *UserService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.String(1), args.Error(2)
}

func (m *UserService) Current(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	in service.ProfileUpdate,
) (*domain.User, error) {
	args := m.Called(ctx, userID, in)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// ContactService is a testify mock of service.ContactService.
type ContactService struct {
	mock.Mock
}

var _ service.ContactService = (*ContactService)(nil)

func (m *ContactService) Create(
	ctx context.Context,
	userID uuid.UUID,
	fields domain.ContactFields,
) (*domain.Contact, error) {
	args := m.Called(ctx, userID, fields)
	contact, _ := args.Get(0).(*domain.Contact)
	return contact, args.Error(1)
}

func (m *ContactService) Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	args := m.Called(ctx, userID, contactID)
	contact, _ := args.Get(0).(*domain.Contact)
	return contact, args.Error(1)
}

func (m *ContactService) Update(
	ctx context.Context,
	userID, contactID uuid.UUID,
	fields domain.ContactFields,
) (*domain.Contact, error) {
	args := m.Called(ctx, userID, contactID, fields)
	contact, _ := args.Get(0).(*domain.Contact)
	return contact, args.Error(1)
}

func (m *ContactService) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	return m.Called(ctx, userID, contactID).Error(0)
}

func (m *ContactService) Search(
	ctx context.Context,
	userID uuid.UUID,
	q service.SearchQuery,
) (*service.SearchResult, error) {
	args := m.Called(ctx, userID, q)
	result, _ := args.Get(0).(*service.SearchResult)
	return result, args.Error(1)
}

// AddressService is a testify mock of service.AddressService.
type AddressService struct {
	mock.Mock
}

var _ service.AddressService = (*AddressService)(nil)

func (m *AddressService) Create(
	ctx context.Context,
	userID, contactID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, contactID, fields)
	address, _ := args.Get(0).(*domain.Address)
	return address, args.Error(1)
}

func (m *AddressService) Get(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, contactID, addressID)
	address, _ := args.Get(0).(*domain.Address)
	return address, args.Error(1)
}

func (m *AddressService) List(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error) {
	args := m.Called(ctx, userID, contactID)
	addresses, _ := args.Get(0).([]*domain.Address)
	return addresses, args.Error(1)
}

func (m *AddressService) Update(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	args := m.Called(ctx, userID, contactID, addressID, fields)
	address, _ := args.Get(0).(*domain.Address)
	return address, args.Error(1)
}

func (m *AddressService) Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error {
	return m.Called(ctx, userID, contactID, addressID).Error(0)
}
