// Package accounts implements login account persistence backed by SQLite:
// Account/Privilege/CharStat tables, password validation, and the
// salted-sha1 hashing scheme the driver's accounts layer historically used.
package accounts

import (
	"crypto/rand"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	_ "modernc.org/sqlite"
	"go.uber.org/zap"
)

// Account is the persisted record for one login.
type Account struct {
	Name       string
	Email      string
	Privileges map[string]bool
	Created    time.Time
	LoggedIn   time.Time
	Banned     bool
	Stats      CharStat
}

// CharStat holds the character attributes the account store persists
// across sessions; everything derived from race/class tables at
// character-creation time but reconstructible from them is not
// duplicated here.
type CharStat struct {
	Gender       string
	Race         string
	Level        int
	XP           int
	HP           int
	AC           int
	MaxHPDice    string
	AttackDice   string
	Agility      int
	Charisma     int
	Intelligence int
	Luck         int
	Speed        int
	Stamina      int
	Strength     int
	Wisdom       int
	Alignment    int
}

// Store is a SQLite-backed account database.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

var nameRe = regexp.MustCompile(`^[a-z]{3,16}$`)
var lettersRe = regexp.MustCompile(`[a-zA-Z]`)
var digitsRe = regexp.MustCompile(`[0-9]`)

// blockedNames mirrors the driver's reserved/profane name list: pronouns,
// deities, and slurs are never accepted as a player name.
var blockedNames = map[string]bool{}

func init() {
	for _, n := range strings.Fields(`irmen me you us them they their theirs he him his she her hers it its
		yes no god allah jesus jezus hitler neuk fuck cunt cock prick pik lul kut dick pussy twat cum milf
		anal sex ass asshole neger nigger nigga jew muslim moslim binladen chink cancer kanker typhus tering
		soa aids bitch motherfucker fucker`) {
		blockedNames[n] = true
	}
}

// Open creates or attaches to the SQLite database at path, creating the
// schema if absent.
func Open(path string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("accounts: open database: %w", err)
	}
	s := &Store{db: db, log: log}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS account (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			pw_hash TEXT NOT NULL,
			pw_salt TEXT NOT NULL,
			created TIMESTAMP NOT NULL,
			logged_in TIMESTAMP,
			banned INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_account_name ON account(name)`,
		`CREATE TABLE IF NOT EXISTS privilege (
			id INTEGER PRIMARY KEY,
			account INTEGER NOT NULL REFERENCES account(id),
			privilege TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_privilege_account ON privilege(account)`,
		`CREATE TABLE IF NOT EXISTS charstat (
			id INTEGER PRIMARY KEY,
			account INTEGER NOT NULL REFERENCES account(id),
			gender TEXT NOT NULL,
			race TEXT,
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			hp INTEGER NOT NULL DEFAULT 1,
			ac INTEGER NOT NULL DEFAULT 0,
			maxhp_dice TEXT NOT NULL DEFAULT '',
			attack_dice TEXT NOT NULL DEFAULT '',
			agi INTEGER NOT NULL DEFAULT 0,
			cha INTEGER NOT NULL DEFAULT 0,
			int INTEGER NOT NULL DEFAULT 0,
			lck INTEGER NOT NULL DEFAULT 0,
			spd INTEGER NOT NULL DEFAULT 0,
			sta INTEGER NOT NULL DEFAULT 0,
			str INTEGER NOT NULL DEFAULT 0,
			wis INTEGER NOT NULL DEFAULT 0,
			alignment INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("accounts: create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// pwHash computes sha1(salt+password) hex-encoded. A random salt is
// generated when salt == "".
func pwHash(password, salt string) (hash, usedSalt string, err error) {
	if salt == "" {
		n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
		if err != nil {
			return "", "", fmt.Errorf("accounts: generate salt: %w", err)
		}
		salt = fmt.Sprintf("%x%d", n, time.Now().UnixNano())
	}
	sum := sha1.Sum([]byte(salt + password))
	return hex.EncodeToString(sum[:]), salt, nil
}

// AcceptPassword validates password strength: at least 6 characters,
// containing a letter and a digit.
func AcceptPassword(password string) error {
	if len(password) >= 6 && lettersRe.MatchString(password) && digitsRe.MatchString(password) {
		return nil
	}
	return fmt.Errorf("password should be minimum length 6, contain letters, at least one number, and optionally other characters")
}

// AcceptName validates a candidate login name: lowercase letters only,
// length 3-16, not in the reserved/blocked list.
func AcceptName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name should be all lowercase letters [a-z] and length 3 to 16")
	}
	if blockedNames[name] {
		return fmt.Errorf("that name is not available")
	}
	return nil
}

// AcceptEmail validates a candidate email address: local@domain, neither
// part empty or whitespace-padded.
func AcceptEmail(email string) error {
	user, domain, ok := strings.Cut(email, "@")
	if !ok || user == "" || domain == "" || strings.TrimSpace(user) != user || strings.TrimSpace(domain) != domain {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// AcceptPrivilege validates that priv is one the driver recognizes.
func AcceptPrivilege(priv string) error {
	if priv != "wizard" {
		return fmt.Errorf("invalid privilege: %s", priv)
	}
	return nil
}

// Create registers a new account. Name, password, and email are validated;
// on success the account is persisted with the given privileges and
// initial character stats.
func (s *Store) Create(name, password, email string, stats CharStat, privileges map[string]bool) (*Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := AcceptName(name); err != nil {
		return nil, err
	}
	if err := AcceptPassword(password); err != nil {
		return nil, err
	}
	if err := AcceptEmail(email); err != nil {
		return nil, err
	}
	for p := range privileges {
		if err := AcceptPrivilege(p); err != nil {
			return nil, err
		}
	}
	hash, salt, err := pwHash(password, "")
	if err != nil {
		return nil, err
	}
	created := time.Now().UTC().Truncate(time.Second)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("accounts: begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM account WHERE name=?`, name).Scan(&count); err != nil {
		return nil, fmt.Errorf("accounts: check existing name: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("that name is not available")
	}
	res, err := tx.Exec(`INSERT INTO account(name, email, pw_hash, pw_salt, created, banned) VALUES (?,?,?,?,?,0)`,
		name, email, hash, salt, created)
	if err != nil {
		return nil, fmt.Errorf("accounts: insert account: %w", err)
	}
	accountID, _ := res.LastInsertId()
	for priv := range privileges {
		if _, err := tx.Exec(`INSERT INTO privilege(account, privilege) VALUES (?,?)`, accountID, priv); err != nil {
			return nil, fmt.Errorf("accounts: insert privilege: %w", err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO charstat(
			account, gender, race, level, xp, hp,
			ac, maxhp_dice, attack_dice, agi, cha, int, lck, spd, sta, str, wis, alignment
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		accountID, stats.Gender, stats.Race, stats.Level, stats.XP, stats.HP,
		stats.AC, stats.MaxHPDice, stats.AttackDice, stats.Agility, stats.Charisma, stats.Intelligence,
		stats.Luck, stats.Speed, stats.Stamina, stats.Strength, stats.Wisdom, stats.Alignment); err != nil {
		return nil, fmt.Errorf("accounts: insert charstat: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("accounts: commit: %w", err)
	}
	if s.log != nil {
		s.log.Infow("account created", "name", name)
	}
	return &Account{Name: name, Email: email, Privileges: privileges, Created: created, Stats: stats}, nil
}

// invalidCredentials is the single uninformative message returned for any
// login failure, so a failed lookup and a wrong password are
// indistinguishable to the caller.
const invalidCredentials = "Invalid name or password."

// ValidatePassword checks name/password against the stored hash. On any
// failure (unknown name or wrong password) it returns the same generic
// error, never revealing which.
func (s *Store) ValidatePassword(name, password string) error {
	var hash, salt string
	var banned int
	err := s.db.QueryRow(`SELECT pw_hash, pw_salt, banned FROM account WHERE name=?`, name).Scan(&hash, &salt, &banned)
	if err != nil {
		return fmt.Errorf(invalidCredentials)
	}
	computed, _, err := pwHash(password, salt)
	if err != nil {
		return fmt.Errorf(invalidCredentials)
	}
	if computed != hash {
		return fmt.Errorf(invalidCredentials)
	}
	if banned != 0 {
		return fmt.Errorf("this account has been banned")
	}
	return nil
}

// Get loads the full account record by name.
func (s *Store) Get(name string) (*Account, error) {
	row := s.db.QueryRow(`SELECT id, name, email, created, logged_in, banned FROM account WHERE name=?`, name)
	var id int64
	var created time.Time
	var loggedIn sql.NullTime
	var banned int
	acc := &Account{Privileges: map[string]bool{}}
	if err := row.Scan(&id, &acc.Name, &acc.Email, &created, &loggedIn, &banned); err != nil {
		return nil, fmt.Errorf("accounts: unknown account %q: %w", name, err)
	}
	acc.Created = created
	if loggedIn.Valid {
		acc.LoggedIn = loggedIn.Time
	}
	acc.Banned = banned != 0

	rows, err := s.db.Query(`SELECT privilege FROM privilege WHERE account=?`, id)
	if err != nil {
		return nil, fmt.Errorf("accounts: load privileges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var priv string
		if err := rows.Scan(&priv); err != nil {
			return nil, err
		}
		acc.Privileges[priv] = true
	}

	err = s.db.QueryRow(`SELECT gender, race, level, xp, hp, ac, maxhp_dice, attack_dice, agi, cha, int, lck, spd, sta, str, wis, alignment FROM charstat WHERE account=?`, id).
		Scan(&acc.Stats.Gender, &acc.Stats.Race, &acc.Stats.Level, &acc.Stats.XP, &acc.Stats.HP,
			&acc.Stats.AC, &acc.Stats.MaxHPDice, &acc.Stats.AttackDice, &acc.Stats.Agility, &acc.Stats.Charisma,
			&acc.Stats.Intelligence, &acc.Stats.Luck, &acc.Stats.Speed, &acc.Stats.Stamina, &acc.Stats.Strength,
			&acc.Stats.Wisdom, &acc.Stats.Alignment)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("accounts: load charstat: %w", err)
	}
	return acc, nil
}

// All lists every account name in the store, ordered alphabetically
// (spec.md §4.7's "all" listing operation).
func (s *Store) All() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM account ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("accounts: list accounts: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Ban marks an account banned, refusing future logins until Unban is called.
func (s *Store) Ban(name string) error {
	_, err := s.db.Exec(`UPDATE account SET banned=1 WHERE name=?`, name)
	if err != nil {
		return fmt.Errorf("accounts: ban %q: %w", name, err)
	}
	return nil
}

// Unban clears a previously banned account.
func (s *Store) Unban(name string) error {
	_, err := s.db.Exec(`UPDATE account SET banned=0 WHERE name=?`, name)
	if err != nil {
		return fmt.Errorf("accounts: unban %q: %w", name, err)
	}
	return nil
}

// ChangeEmail verifies password before setting a new, validated email
// address, mirroring ChangePassword's verify-then-update shape.
func (s *Store) ChangeEmail(name, password, newEmail string) error {
	if err := s.ValidatePassword(name, password); err != nil {
		return err
	}
	if err := AcceptEmail(newEmail); err != nil {
		return err
	}
	_, err := s.db.Exec(`UPDATE account SET email=? WHERE name=?`, newEmail, name)
	return err
}

// LoggedIn records the current time as the account's last login.
func (s *Store) LoggedIn(name string) error {
	_, err := s.db.Exec(`UPDATE account SET logged_in=? WHERE name=?`, time.Now().UTC().Truncate(time.Second), name)
	if err != nil {
		return fmt.Errorf("accounts: record login: %w", err)
	}
	return nil
}

// SetPrivilege grants or revokes a privilege. Per the driver's session
// model, changing a privilege requires the affected player to reconnect
// before it takes effect (the caller is responsible for forcing that).
func (s *Store) SetPrivilege(name, priv string, grant bool) error {
	if err := AcceptPrivilege(priv); err != nil {
		return err
	}
	var id int64
	if err := s.db.QueryRow(`SELECT id FROM account WHERE name=?`, name).Scan(&id); err != nil {
		return fmt.Errorf("accounts: unknown account %q: %w", name, err)
	}
	if grant {
		_, err := s.db.Exec(`INSERT INTO privilege(account, privilege) VALUES (?,?)`, id, priv)
		return err
	}
	_, err := s.db.Exec(`DELETE FROM privilege WHERE account=? AND privilege=?`, id, priv)
	return err
}

// ChangePassword verifies oldPassword before setting newPassword.
func (s *Store) ChangePassword(name, oldPassword, newPassword string) error {
	if err := s.ValidatePassword(name, oldPassword); err != nil {
		return err
	}
	if err := AcceptPassword(newPassword); err != nil {
		return err
	}
	hash, salt, err := pwHash(newPassword, "")
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE account SET pw_hash=?, pw_salt=? WHERE name=?`, hash, salt, name)
	return err
}
