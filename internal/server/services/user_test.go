package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"newssense/internal/common"
	"newssense/internal/dbx"
	"newssense/internal/server/auth"
	"newssense/internal/server/config"
	"newssense/internal/server/models"
	articlesrepo "newssense/internal/server/repositories/articles"
	usersrepo "newssense/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmail    *models.User
	byEmailErr error

	byIdentifier    *models.User
	byIdentifierErr error

	verifiedID     string
	setVerifiedErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	if f.byIdentifierErr != nil {
		return nil, f.byIdentifierErr
	}
	return f.byIdentifier, nil
}

func (f *fakeUsersRepo) SetVerified(ctx context.Context, userID string) error {
	if f.setVerifiedErr != nil {
		return f.setVerifiedErr
	}
	f.verifiedID = userID
	return nil
}

type fakeSender struct {
	err      error
	sentTo   []string
	subjects []string
	bodies   []string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, to)
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	a *fakeArticlesRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository        { return m.u }
func (m *fakeRepoManager) Articles(db dbx.DBTX) articlesrepo.Repository { return m.a }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func newUserService(t *testing.T, u *fakeUsersRepo, sender *fakeSender, requireVerification bool) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                "k",
		TokenValidityDuration:    time.Hour,
		RequireEmailVerification: requireVerification,
	}
	return NewUserService(nil, &fakeRepoManager{u: u}, sender, cfg)
}

// --- Signup ---

func TestSignup_CreatesPendingAccountAndSendsOneEmail(t *testing.T) {
	u := &fakeUsersRepo{}
	sender := &fakeSender{}
	s := newUserService(t, u, sender, true)

	result, err := s.Signup(context.Background(), "alice", "alice@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if result.UserID != "u-1" || result.Token != "" {
		t.Fatalf("unexpected result: %+v", result)
	}

	if u.created == nil {
		t.Fatalf("account was not created")
	}
	if u.created.Verified {
		t.Fatalf("new account must start unverified")
	}
	if !auth.IsValidCodeFormat(u.created.VerificationCode) {
		t.Fatalf("stored code %q is not 6 digits", u.created.VerificationCode)
	}
	if u.created.PasswordHash == "pw123456" || !auth.CheckPassword("pw123456", u.created.PasswordHash) {
		t.Fatalf("password hash is wrong: %q", u.created.PasswordHash)
	}

	if len(sender.sentTo) != 1 || sender.sentTo[0] != "alice@x.com" {
		t.Fatalf("expected exactly one email to alice@x.com, got %v", sender.sentTo)
	}
}

func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"blank username", "", "a@x.com", "pw123456"},
		{"blank email", "alice", "", "pw123456"},
		{"malformed email", "alice", "not-an-email", "pw123456"},
		{"blank password", "alice", "a@x.com", ""},
		{"short password", "alice", "a@x.com", "pw1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &fakeUsersRepo{}
			sender := &fakeSender{}
			s := newUserService(t, u, sender, true)

			_, err := s.Signup(context.Background(), tt.username, tt.email, tt.password)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("want common.ErrValidation, got %v", err)
			}
			if u.created != nil || len(sender.sentTo) != 0 {
				t.Fatalf("invalid signup must not create accounts or send email")
			}
		})
	}
}

func TestSignup_Conflict(t *testing.T) {
	u := &fakeUsersRepo{createErr: common.ErrConflict}
	sender := &fakeSender{}
	s := newUserService(t, u, sender, true)

	_, err := s.Signup(context.Background(), "alice", "alice@x.com", "pw123456")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("want common.ErrConflict, got %v", err)
	}
	if len(sender.sentTo) != 0 {
		t.Fatalf("conflicting signup must not send email")
	}
}

func TestSignup_DeliveryFailureKeepsAccount(t *testing.T) {
	u := &fakeUsersRepo{}
	sender := &fakeSender{err: errors.New("relay down")}
	s := newUserService(t, u, sender, true)

	_, err := s.Signup(context.Background(), "alice", "alice@x.com", "pw123456")
	if !errors.Is(err, common.ErrDelivery) {
		t.Fatalf("want common.ErrDelivery, got %v", err)
	}
	// Account creation is not rolled back; the user can request a resend.
	if u.created == nil {
		t.Fatalf("account must survive a failed delivery")
	}
}

func TestSignup_AutoIssuesTokenWhenVerificationDisabled(t *testing.T) {
	u := &fakeUsersRepo{}
	s := newUserService(t, u, &fakeSender{}, false)

	result, err := s.Signup(context.Background(), "alice", "alice@x.com", "pw123456")
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected auto-issued token")
	}
	gotID, err := auth.GetUserIDFromToken(result.Token, []byte("k"))
	if err != nil || gotID != "u-1" {
		t.Fatalf("token does not resolve to the new account: id=%q err=%v", gotID, err)
	}
}

// --- VerifyEmail ---

func pendingUser(code string) *models.User {
	return &models.User{
		ID:               "u-1",
		Username:         "alice",
		Email:            "alice@x.com",
		PasswordHash:     "h",
		VerificationCode: code,
		Verified:         false,
	}
}

func TestVerifyEmail_Success(t *testing.T) {
	u := &fakeUsersRepo{byEmail: pendingUser("123456")}
	s := newUserService(t, u, &fakeSender{}, true)

	if err := s.VerifyEmail(context.Background(), "alice@x.com", "123456"); err != nil {
		t.Fatalf("VerifyEmail error: %v", err)
	}
	if u.verifiedID != "u-1" {
		t.Fatalf("SetVerified was not called for the account")
	}
}

func TestVerifyEmail_BadCodeFormat(t *testing.T) {
	s := newUserService(t, &fakeUsersRepo{}, &fakeSender{}, true)

	for _, code := range []string{"", "12345", "abcdef", "1234567"} {
		if err := s.VerifyEmail(context.Background(), "alice@x.com", code); !errors.Is(err, common.ErrValidation) {
			t.Fatalf("code %q: want common.ErrValidation, got %v", code, err)
		}
	}
}

func TestVerifyEmail_UnknownEmail(t *testing.T) {
	u := &fakeUsersRepo{byEmailErr: common.ErrNotFound}
	s := newUserService(t, u, &fakeSender{}, true)

	if err := s.VerifyEmail(context.Background(), "ghost@x.com", "123456"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestVerifyEmail_AlreadyVerified(t *testing.T) {
	verified := pendingUser("")
	verified.Verified = true
	u := &fakeUsersRepo{byEmail: verified}
	s := newUserService(t, u, &fakeSender{}, true)

	if err := s.VerifyEmail(context.Background(), "alice@x.com", "123456"); !errors.Is(err, common.ErrNoCode) {
		t.Fatalf("want common.ErrNoCode, got %v", err)
	}
	if u.verifiedID != "" {
		t.Fatalf("no state change expected")
	}
}

func TestVerifyEmail_Mismatch(t *testing.T) {
	u := &fakeUsersRepo{byEmail: pendingUser("123456")}
	s := newUserService(t, u, &fakeSender{}, true)

	if err := s.VerifyEmail(context.Background(), "alice@x.com", "654321"); !errors.Is(err, common.ErrCodeMismatch) {
		t.Fatalf("want common.ErrCodeMismatch, got %v", err)
	}
	if u.verifiedID != "" {
		t.Fatalf("a mismatched code must not mutate state")
	}
}

// --- Login ---

func verifiedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{ID: "u-1", Username: "alice", Email: "alice@x.com", PasswordHash: hash, Verified: true}
}

func TestLogin_Success(t *testing.T) {
	u := &fakeUsersRepo{byIdentifier: verifiedUser(t, "pw123456")}
	s := newUserService(t, u, &fakeSender{}, true)

	result, err := s.Login(context.Background(), "alice", "pw123456")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.UserID != "u-1" {
		t.Fatalf("unexpected user id: %q", result.UserID)
	}
	gotID, err := auth.GetUserIDFromToken(result.Token, []byte("k"))
	if err != nil || gotID != "u-1" {
		t.Fatalf("issued token is not valid: id=%q err=%v", gotID, err)
	}
}

func TestLogin_DoesNotRevealWhichFieldWasWrong(t *testing.T) {
	unknown := &fakeUsersRepo{byIdentifierErr: common.ErrNotFound}
	wrongPw := &fakeUsersRepo{byIdentifier: verifiedUser(t, "pw123456")}

	s1 := newUserService(t, unknown, &fakeSender{}, true)
	s2 := newUserService(t, wrongPw, &fakeSender{}, true)

	_, err1 := s1.Login(context.Background(), "ghost", "pw123456")
	_, err2 := s2.Login(context.Background(), "alice", "wrong-password")

	if !errors.Is(err1, common.ErrInvalidCredentials) || !errors.Is(err2, common.ErrInvalidCredentials) {
		t.Fatalf("both failures must be common.ErrInvalidCredentials: %v / %v", err1, err2)
	}
	if err1.Error() != err2.Error() {
		t.Fatalf("error messages differ, enabling enumeration: %q vs %q", err1, err2)
	}
}

func TestLogin_UnverifiedAccountBlocked(t *testing.T) {
	pending := verifiedUser(t, "pw123456")
	pending.Verified = false

	s := newUserService(t, &fakeUsersRepo{byIdentifier: pending}, &fakeSender{}, true)
	if _, err := s.Login(context.Background(), "alice", "pw123456"); !errors.Is(err, common.ErrNotVerified) {
		t.Fatalf("want common.ErrNotVerified, got %v", err)
	}

	// With verification not required the same account logs in fine.
	relaxed := newUserService(t, &fakeUsersRepo{byIdentifier: pending}, &fakeSender{}, false)
	if _, err := relaxed.Login(context.Background(), "alice", "pw123456"); err != nil {
		t.Fatalf("Login error with verification disabled: %v", err)
	}
}
