package voterdirectory_test

import (
	"context"
	"errors"
	"testing"

	voterdirectory "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory"
	domainerrors "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/domain/errors"
	httptransport "github.com/rlopezl29/proyectofinal/contexts/identity-access/voter-directory/transport/http"
)

func validRegistration() httptransport.RegisterVoterRequest {
	return httptransport.RegisterVoterRequest{
		RegistrationNumber: "12345",
		Name:               "Ana Lopez",
		Email:              "ana@example.com",
		IdentityDocument:   "1234567890123",
		BirthDate:          "1990-01-15",
		Secret:             "Password1",
	}
}

func TestRegisterVoterStoresRecordWithoutPlaintextSecret(t *testing.T) {
	module := voterdirectory.NewInMemoryModule(nil, nil)

	resp, err := module.Handler.RegisterVoterHandler(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.RegistrationNumber != "12345" || resp.IdentityDocument != "1234567890123" {
		t.Fatalf("unexpected voter response: %+v", resp)
	}
	if module.Store.Count() != 1 {
		t.Fatalf("expected one stored voter, got %d", module.Store.Count())
	}
	stored, err := module.Store.GetVoterByRegistration(context.Background(), "12345")
	if err != nil {
		t.Fatalf("stored voter lookup failed: %v", err)
	}
	if stored.CredentialHash == "" || stored.CredentialHash == "Password1" {
		t.Fatalf("expected hashed credential, got %q", stored.CredentialHash)
	}
}

func TestRegisterVoterReportsDuplicateBeforeFormat(t *testing.T) {
	module := voterdirectory.NewInMemoryModule(nil, nil)
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), validRegistration()); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	sameEmail := validRegistration()
	sameEmail.RegistrationNumber = "99"
	sameEmail.IdentityDocument = "bad"
	sameEmail.BirthDate = "2020-01-01"
	sameEmail.Secret = "weak"
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), sameEmail); !errors.Is(err, domainerrors.ErrDuplicateIdentity) {
		t.Fatalf("expected duplicate identity for email, got %v", err)
	}

	sameDocument := validRegistration()
	sameDocument.RegistrationNumber = "54321"
	sameDocument.Email = "other@example.com"
	sameDocument.Secret = "weak"
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), sameDocument); !errors.Is(err, domainerrors.ErrDuplicateIdentity) {
		t.Fatalf("expected duplicate identity for document, got %v", err)
	}
	if module.Store.Count() != 1 {
		t.Fatalf("expected directory unchanged, got %d voters", module.Store.Count())
	}
}

func TestRegisterVoterValidationOrder(t *testing.T) {
	module := voterdirectory.NewInMemoryModule(nil, nil)

	req := validRegistration()
	req.IdentityDocument = "123"
	req.RegistrationNumber = "1"
	_, err := module.Handler.RegisterVoterHandler(context.Background(), req)
	if !errors.Is(err, domainerrors.ErrInvalidIdentityDocument) {
		t.Fatalf("expected identity document error first, got %v", err)
	}
	if !errors.Is(err, domainerrors.ErrInvalidFormat) {
		t.Fatalf("expected identity document error to be an invalid format error")
	}

	req = validRegistration()
	req.RegistrationNumber = "1"
	req.BirthDate = "2020-01-01"
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), req); !errors.Is(err, domainerrors.ErrInvalidRegistrationNumber) {
		t.Fatalf("expected registration number error, got %v", err)
	}

	req = validRegistration()
	req.BirthDate = "2020-01-01"
	req.Secret = "weak"
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), req); !errors.Is(err, domainerrors.ErrInvalidAge) {
		t.Fatalf("expected invalid age, got %v", err)
	}

	req = validRegistration()
	req.Secret = "alllowercase1"
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), req); !errors.Is(err, domainerrors.ErrWeakCredential) {
		t.Fatalf("expected weak credential, got %v", err)
	}
	if module.Store.Count() != 0 {
		t.Fatalf("expected no voters stored, got %d", module.Store.Count())
	}
}

func TestFindByCredentialsRequiresAllFields(t *testing.T) {
	module := voterdirectory.NewInMemoryModule(nil, nil)
	if _, err := module.Handler.RegisterVoterHandler(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	login := httptransport.LoginRequest{
		RegistrationNumber: "12345",
		IdentityDocument:   "1234567890123",
		BirthDate:          "1990-01-15",
		Secret:             "Password1",
	}
	voter, err := module.Handler.FindByCredentialsHandler(context.Background(), login)
	if err != nil {
		t.Fatalf("find by credentials failed: %v", err)
	}
	if voter.Email != "ana@example.com" {
		t.Fatalf("unexpected voter: %+v", voter)
	}

	mismatches := []httptransport.LoginRequest{
		{RegistrationNumber: "54321", IdentityDocument: login.IdentityDocument, BirthDate: login.BirthDate, Secret: login.Secret},
		{RegistrationNumber: login.RegistrationNumber, IdentityDocument: "9999999999999", BirthDate: login.BirthDate, Secret: login.Secret},
		{RegistrationNumber: login.RegistrationNumber, IdentityDocument: login.IdentityDocument, BirthDate: "1990-01-16", Secret: login.Secret},
		{RegistrationNumber: login.RegistrationNumber, IdentityDocument: login.IdentityDocument, BirthDate: login.BirthDate, Secret: "Password2"},
	}
	for i, req := range mismatches {
		if _, err := module.Handler.FindByCredentialsHandler(context.Background(), req); !errors.Is(err, domainerrors.ErrVoterNotFound) {
			t.Fatalf("mismatch %d: expected voter not found, got %v", i, err)
		}
	}
}
