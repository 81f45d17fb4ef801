package seeder

import (
	"context"
	"employee-directory/internal/service"
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"math"
	"strconv"
	"time"
)

const DefaultUsers = 3

var (
	Roles       = []string{"admin", "editor", "viewer"}
	Departments = []string{"IT", "HR", "Marketing"}
	JobTitles   = []string{"Software Engineer", "HR Manager", "Marketing Specialist"}
)

// SeededUser carries the generated plaintext password so the account can be
// used to log in; only its bcrypt hash is stored.
type SeededUser struct {
	ID       int64
	Login    string
	Password string
}

type fakeUser struct {
	login       string
	password    string
	name        string
	patronymic  string
	surname     string
	birthdate   time.Time
	tgNickname  string
	phone       string
	interests   string
	ncoins      int
	rating      float64
	thanksCount int
}

type Seeder struct {
	db    *sqlx.DB
	faker *gofakeit.Faker
	hash  func(string) (string, error)
}

func New(db *sqlx.DB, faker *gofakeit.Faker) *Seeder {
	return &Seeder{db: db, faker: faker, hash: service.HashPassword}
}

// SeedReference inserts the fixed roles, departments and job titles. Names
// that already exist are skipped, so it is safe to run repeatedly.
func (s *Seeder) SeedReference(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, role := range Roles {
			if _, err := tx.ExecContext(ctx, `INSERT INTO roles (role_name) VALUES ($1) ON CONFLICT (role_name) DO NOTHING;`, role); err != nil {
				return fmt.Errorf("insert role %q: %w", role, err)
			}
		}
		for _, dept := range Departments {
			if _, err := tx.ExecContext(ctx, `INSERT INTO departments (department_name) VALUES ($1) ON CONFLICT (department_name) DO NOTHING;`, dept); err != nil {
				return fmt.Errorf("insert department %q: %w", dept, err)
			}
		}
		for _, title := range JobTitles {
			if _, err := tx.ExecContext(ctx, `INSERT INTO job_titles (title) VALUES ($1) ON CONFLICT (title) DO NOTHING;`, title); err != nil {
				return fmt.Errorf("insert job title %q: %w", title, err)
			}
		}
		return nil
	})
}

// SeedUsers creates n synthetic users with details and one role, department
// and job title each. The whole batch commits or none of it does.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]SeededUser, error) {
	if n <= 0 {
		n = DefaultUsers
	}

	seeded := make([]SeededUser, 0, n)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for i := 0; i < n; i++ {
			user := s.generateUser()
			id, err := s.insertUser(ctx, tx, user)
			if err != nil {
				return err
			}
			if err := linkUser(ctx, tx, id, i); err != nil {
				return err
			}
			seeded = append(seeded, SeededUser{ID: id, Login: user.login, Password: user.password})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *Seeder) insertUser(ctx context.Context, tx *sqlx.Tx, user fakeUser) (int64, error) {
	hash, err := s.hash(user.password)
	if err != nil {
		return 0, fmt.Errorf("hash password for %q: %w", user.login, err)
	}

	var id int64
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (login, password, name, patronymic, surname, birthdate, tg_nickname, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`, user.login, hash, user.name, user.patronymic, user.surname, user.birthdate, user.tgNickname, user.phone).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", user.login, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_details (user_id, interests, ncoins, rating, thanks_count)
		VALUES ($1, $2, $3, $4, $5);
	`, id, user.interests, user.ncoins, user.rating, user.thanksCount)
	if err != nil {
		return 0, fmt.Errorf("insert details for user %d: %w", id, err)
	}
	return id, nil
}

// linkUser attaches user n to the n-th (mod 3) role, department and job title.
func linkUser(ctx context.Context, tx *sqlx.Tx, userID int64, n int) error {
	links := []struct {
		query string
		name  string
	}{
		{`INSERT INTO user_roles (user_id, role_id) SELECT $1, id FROM roles WHERE role_name = $2;`, Roles[n%len(Roles)]},
		{`INSERT INTO user_departments (user_id, department_id) SELECT $1, id FROM departments WHERE department_name = $2;`, Departments[n%len(Departments)]},
		{`INSERT INTO user_job_titles (user_id, job_title_id) SELECT $1, id FROM job_titles WHERE title = $2;`, JobTitles[n%len(JobTitles)]},
	}

	for _, link := range links {
		res, err := tx.ExecContext(ctx, link.query, userID, link.name)
		if err != nil {
			return fmt.Errorf("link user %d to %q: %w", userID, link.name, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected != 1 {
			return fmt.Errorf("link user %d: %q is not seeded", userID, link.name)
		}
	}
	return nil
}

func (s *Seeder) generateUser() fakeUser {
	f := s.faker
	now := time.Now()
	return fakeUser{
		login:       f.Username() + strconv.Itoa(f.Number(100, 999)),
		password:    f.Password(true, true, true, false, false, 12),
		name:        f.FirstName(),
		patronymic:  f.FirstName(),
		surname:     f.LastName(),
		birthdate:   f.DateRange(now.AddDate(-60, 0, 0), now.AddDate(-20, 0, 0)),
		tgNickname:  "@" + f.Username(),
		phone:       f.Phone(),
		interests:   f.Sentence(6),
		ncoins:      f.IntRange(0, 500),
		rating:      math.Round(f.Float64Range(0, 5)*100) / 100,
		thanksCount: f.IntRange(0, 100),
	}
}

func (s *Seeder) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Errorf("rollback seeding transaction: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}
