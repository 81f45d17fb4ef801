package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// User is a row of the users table. Password holds the stored bcrypt hash and
// is never serialized.
type User struct {
	ID         int64   `json:"id" db:"id"`
	Login      string  `json:"login" db:"login"`
	Password   string  `json:"-" db:"password"`
	Name       *string `json:"name" db:"name"`
	Patronymic *string `json:"patronymic" db:"patronymic"`
	Surname    *string `json:"surname" db:"surname"`
	Birthdate  *Date   `json:"birthdate" db:"birthdate"`
	TgNickname *string `json:"tg_nickname" db:"tg_nickname"`
	Phone      *string `json:"phone" db:"phone"`
}

type UserDetails struct {
	UserID      int64    `json:"user_id" db:"-"`
	Ncoins      *int64   `json:"ncoins" db:"ncoins"`
	Rating      *float64 `json:"rating" db:"rating"`
	ThanksCount *int64   `json:"thanks_count" db:"thanks_count"`
	Interests   *string  `json:"interests" db:"interests"`
}

type JobTitle struct {
	Title      string `json:"title" db:"title"`
	Department string `json:"department" db:"department_name"`
	Role       string `json:"role" db:"role_name"`
}

type JobInfo struct {
	UserID    int64      `json:"user_id"`
	JobTitles []JobTitle `json:"job_titles"`
}

type UserPhoto struct {
	UserID int64  `json:"user_id"`
	Photo  string `json:"photo"`
}

type Credentials struct {
	ID           int64  `db:"id"`
	PasswordHash string `db:"password"`
}

// Date is a calendar date without time of day, rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	return d.parse(s[1 : len(s)-1])
}

func (d *Date) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}
