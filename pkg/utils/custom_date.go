package utils

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const DateLayout = "2006-01-02"

// CustomDate is a calendar day exchanged as "YYYY-MM-DD" in JSON and stored
// as a postgres date.
type CustomDate time.Time

func NewCustomDate(year int, month time.Month, day int) CustomDate {
	return CustomDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func ParseCustomDate(s string) (CustomDate, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return CustomDate{}, err
	}
	return CustomDate(parsed), nil
}

func (cd *CustomDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*cd = CustomDate(v)
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into CustomDate", v)
	}
}

// ScanDate lets pgx decode a date column straight into CustomDate.
func (cd *CustomDate) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into CustomDate")
	}
	if v.InfinityModifier != pgtype.Finite {
		return fmt.Errorf("cannot scan infinite date into CustomDate")
	}
	*cd = CustomDate(v.Time)
	return nil
}

// DateValue lets CustomDate be passed as a query argument for a date column.
func (cd CustomDate) DateValue() (pgtype.Date, error) {
	return pgtype.Date{Time: cd.Time(), Valid: true}, nil
}

func (cd CustomDate) Time() time.Time {
	return time.Time(cd)
}

// After reports whether the day starts (midnight UTC) strictly after t.
func (cd CustomDate) After(t time.Time) bool {
	d := cd.Time()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start.After(t)
}

func (cd CustomDate) String() string {
	return cd.Time().Format(DateLayout)
}

func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + cd.String() + `"`), nil
}

func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(`"`+DateLayout+`"`, string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s, expected YYYY-MM-DD", data)
	}
	*cd = CustomDate(parsed)
	return nil
}
