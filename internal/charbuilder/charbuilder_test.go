package charbuilder

import (
	"path/filepath"
	"testing"

	"emberloom/internal/accounts"
	"emberloom/internal/connio"
	"emberloom/internal/driver"
	"emberloom/internal/lang"
	"emberloom/internal/player"
)

type fakeCtx struct {
	step *driver.Step
	cont driver.Continuation
}

func (f *fakeCtx) BeginDialog(p *player.Player, step driver.Step, cont driver.Continuation) {
	f.step = &step
	f.cont = cont
	p.Tell(step.Prompt)
}

func (f *fakeCtx) submit(t *testing.T, response string) {
	t.Helper()
	next, done, err := f.cont(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		f.step = nil
		return
	}
	f.step = next
}

func openTestStore(t *testing.T) *accounts.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.db")
	store, err := accounts.Open(path, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBuilderCreatesAccountAfterFullDialog(t *testing.T) {
	store := openTestStore(t)
	var completed *accounts.Account
	b := &Builder{Store: store, StartRace: "human", OnComplete: func(p *player.Player, acc *accounts.Account) {
		completed = acc
	}}
	p := player.New("", "", lang.Gender(""), connio.NewMemConnection())

	ctx := &fakeCtx{}
	b.Begin(ctx, p)
	if ctx.step == nil {
		t.Fatal("expected first step to be set")
	}

	ctx.submit(t, "julie")
	ctx.submit(t, "hunter22")
	ctx.submit(t, "hunter22")
	ctx.submit(t, "julie@example.com")
	ctx.submit(t, "f")
	ctx.submit(t, "")

	if ctx.step != nil {
		t.Fatalf("expected dialog to finish, still on step %+v", ctx.step)
	}
	acc, err := store.Get("julie")
	if err != nil {
		t.Fatalf("account should exist: %v", err)
	}
	if acc.Stats.Race != "human" {
		t.Errorf("race = %q, want default human", acc.Stats.Race)
	}
	if err := store.ValidatePassword("julie", "hunter22"); err != nil {
		t.Errorf("password should validate: %v", err)
	}
	if completed == nil || completed.Name != "julie" {
		t.Fatalf("expected OnComplete with julie's account, got %+v", completed)
	}
}

func TestBuilderRejectsMismatchedPasswordConfirmation(t *testing.T) {
	store := openTestStore(t)
	b := &Builder{Store: store, StartRace: "human"}
	p := player.New("", "", lang.Gender(""), connio.NewMemConnection())

	ctx := &fakeCtx{}
	b.Begin(ctx, p)
	ctx.submit(t, "max")
	ctx.submit(t, "secret99")
	ctx.submit(t, "wrongpass")

	if ctx.step == nil || ctx.step.Prompt != "Passwords did not match. Choose a password:" {
		t.Errorf("expected password mismatch re-prompt, got %+v", ctx.step)
	}
}

func TestBuilderLogsExistingAccountInAfterValidPassword(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Create("anna", "pass123", "a@b.com", accounts.CharStat{Gender: "f", Race: "elf"}, nil); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	var completed *accounts.Account
	b := &Builder{Store: store, StartRace: "human", OnComplete: func(p *player.Player, acc *accounts.Account) {
		completed = acc
	}}
	p := player.New("", "", lang.Gender(""), connio.NewMemConnection())

	ctx := &fakeCtx{}
	b.Begin(ctx, p)
	ctx.submit(t, "anna")
	if ctx.step == nil || ctx.step.Prompt != "Password:" {
		t.Fatalf("expected password prompt for existing account, got %+v", ctx.step)
	}
	ctx.submit(t, "pass123")

	if ctx.step != nil {
		t.Fatalf("expected dialog to finish, still on step %+v", ctx.step)
	}
	if completed == nil || completed.Name != "anna" {
		t.Fatalf("expected OnComplete with anna's account, got %+v", completed)
	}
}

func TestBuilderRejectsWrongPasswordForExistingAccount(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Create("anna", "pass123", "a@b.com", accounts.CharStat{Gender: "f"}, nil); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	b := &Builder{Store: store, StartRace: "human"}
	p := player.New("", "", lang.Gender(""), connio.NewMemConnection())

	ctx := &fakeCtx{}
	b.Begin(ctx, p)
	ctx.submit(t, "anna")
	ctx.submit(t, "wrongpass")

	if ctx.step == nil || ctx.step.Prompt != "Invalid name or password.\nBy what name shall we know you?" {
		t.Errorf("expected re-prompt for the name after a failed login, got %+v", ctx.step)
	}
}
