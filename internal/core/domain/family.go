package domain

import (
	"fmt"
	"strings"
)

// Family identifies the category of database engine behind a connection
type Family string

const (
	FamilySQLite     Family = "sqlite"
	FamilyPostgreSQL Family = "postgresql"
	FamilyMySQL      Family = "mysql"
)

// schemePrefixes maps scheme prefixes to families
var schemePrefixes = []struct {
	prefix string
	family Family
}{
	{"sqlite", FamilySQLite},
	{"postgres", FamilyPostgreSQL},
	{"mysql", FamilyMySQL},
	{"mariadb", FamilyMySQL},
}

// Families returns every supported family
func Families() []Family {
	return []Family{FamilySQLite, FamilyPostgreSQL, FamilyMySQL}
}

// FamilyOf returns the family for a connection scheme such as "sqlite",
// "postgresql+psycopg2" or "mysql+pymysql".
func FamilyOf(scheme string) (Family, error) {
	s := strings.ToLower(strings.TrimSpace(scheme))
	if s != "" {
		for _, p := range schemePrefixes {
			if strings.HasPrefix(s, p.prefix) {
				return p.family, nil
			}
		}
	}
	return "", fmt.Errorf("%w: no console available for %q database", ErrUnsupportedDriver, scheme)
}

// String returns the family name
func (f Family) String() string {
	return string(f)
}
