package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/ashwinyue/dataset-hub/internal/config"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *repository.Repositories) {
	t.Helper()
	repos := testutil.NewTestRepos(t)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTL = 1

	// Redis 缺省时撤销检查回退数据库
	svc, err := NewService(repos, cfg, nil)
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc, repos
}

func register(t *testing.T, svc *Service, name, email string) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return user
}

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	first := register(t, svc, "alice", "alice@example.com")
	if first.Role != model.RoleAdmin {
		t.Errorf("first user role = %s, want admin", first.Role)
	}

	second := register(t, svc, "bob", "bob@example.com")
	if second.Role != model.RoleUser {
		t.Errorf("second user role = %s, want user", second.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "other",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Register() error = %v, want duplicate email rejection", err)
	}
}

func TestLogin_AndValidate(t *testing.T) {
	svc, _ := newTestService(t)
	registered := register(t, svc, "alice", "alice@example.com")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if resp.Token == "" || resp.User == nil || resp.User.ID != registered.ID {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	user, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("validated user = %s, want %s", user.ID, registered.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if err == nil {
		t.Fatal("Login() with wrong password must fail")
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, repos := newTestService(t)
	user := register(t, svc, "alice", "alice@example.com")

	user.IsActive = false
	if err := repos.User.UpdateUser(user); err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	}); err == nil {
		t.Fatal("Login() for disabled account must fail")
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "alice", "alice@example.com")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), resp.Token); err == nil {
		t.Fatal("revoked token must not validate")
	}
}

func TestIsRevoked_FailsClosedOnLookupError(t *testing.T) {
	svc, repos := newTestService(t)
	register(t, svc, "alice", "alice@example.com")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if svc.isRevoked(context.Background(), resp.Token) {
		t.Fatal("freshly issued token must not be revoked")
	}

	// 令牌状态无法确认时按已撤销处理
	sqlDB, err := repos.DB.DB()
	if err != nil {
		t.Fatalf("failed to get database: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	if !svc.isRevoked(context.Background(), resp.Token) {
		t.Error("lookup failure must treat the token as revoked")
	}
}

func TestValidateToken_RejectsForgery(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
		t.Error("garbage token must not validate")
	}

	// 不同密钥签发的令牌不可通过
	other, _ := newTestService(t)
	other.secret = "another-secret"
	registered := register(t, other, "eve", "eve@example.com")
	forged, err := other.generateToken(registered)
	if err != nil {
		t.Fatalf("generateToken() failed: %v", err)
	}
	if _, err := svc.ValidateToken(context.Background(), forged); err == nil {
		t.Error("token signed with a different secret must not validate")
	}
}
