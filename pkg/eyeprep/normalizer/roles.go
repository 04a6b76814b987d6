package normalizer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

// Roles records the position of every column by role.
type Roles struct {
	Gender      int
	GenderName  string
	Group       int // -1 when there is no group column
	GroupName   string
	Numeric     []int
	Passthrough []int
}

// NumericNames returns the numeric column names in column order.
func (r Roles) NumericNames(columns []string) []string {
	out := make([]string, len(r.Numeric))
	for i, c := range r.Numeric {
		out[i] = columns[c]
	}
	return out
}

// CheckShape verifies that every row has one cell per column. Row numbers
// in the error are 1-based, header excluded.
func CheckShape(ds *models.Dataset) error {
	for r, row := range ds.Rows {
		if len(row) != len(ds.Columns) {
			return NewConfigurationError("", RoleRow,
				fmt.Errorf("%w: row %d has %d cells, header has %d", ErrNotRectangular, r+1, len(row), len(ds.Columns)))
		}
	}
	return nil
}

// TrimHeaders trims every column name. Names that collide after trimming
// are a configuration error.
func TrimHeaders(columns []string) ([]string, error) {
	out := make([]string, len(columns))
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		name := strings.TrimSpace(col)
		if seen[name] {
			return nil, NewConfigurationError(name, RoleHeader,
				fmt.Errorf("%w: duplicate column name", ErrInvalidColumns))
		}
		seen[name] = true
		out[i] = name
	}
	return out, nil
}

// detectColumn returns the last column whose lower-cased name contains
// needle, skipping skip.
func detectColumn(columns []string, needle string, skip int) int {
	found := -1
	for i, col := range columns {
		if i != skip && strings.Contains(strings.ToLower(col), needle) {
			found = i
		}
	}
	return found
}

func lookupColumn(columns []string, name string, role Role) (int, error) {
	idx := slices.Index(columns, strings.TrimSpace(name))
	if idx < 0 {
		return -1, NewConfigurationError(name, role, ErrColumnNotFound)
	}
	return idx, nil
}

// ResolveRoles assigns a role to every column of an already trimmed
// header.
func ResolveRoles(columns []string, cfg Config) (Roles, error) {
	roles := Roles{Gender: -1, Group: -1}

	var err error
	if cfg.GenderColumn != "" {
		if roles.Gender, err = lookupColumn(columns, cfg.GenderColumn, RoleGender); err != nil {
			return Roles{}, err
		}
	} else if roles.Gender = detectColumn(columns, "gender", -1); roles.Gender < 0 {
		return Roles{}, NewConfigurationError("", RoleGender,
			fmt.Errorf("%w: no column name contains %q", ErrColumnNotFound, "gender"))
	}
	roles.GenderName = columns[roles.Gender]

	if cfg.GroupColumn != "" {
		if roles.Group, err = lookupColumn(columns, cfg.GroupColumn, RoleGroup); err != nil {
			return Roles{}, err
		}
		if roles.Group == roles.Gender {
			return Roles{}, NewConfigurationError(cfg.GroupColumn, RoleGroup,
				fmt.Errorf("%w: group column is also the gender column", ErrInvalidColumns))
		}
	} else {
		roles.Group = detectColumn(columns, "group", roles.Gender)
	}
	if roles.Group >= 0 {
		roles.GroupName = columns[roles.Group]
	}

	excluded := make(map[int]bool, len(cfg.ExcludeColumns))
	for _, name := range cfg.ExcludeColumns {
		idx, err := lookupColumn(columns, name, RoleExclude)
		if err != nil {
			return Roles{}, err
		}
		excluded[idx] = true
	}

	numeric := make(map[int]bool, len(columns))
	if cfg.NumericColumns != nil {
		for _, name := range cfg.NumericColumns {
			idx, err := lookupColumn(columns, name, RoleNumeric)
			if err != nil {
				return Roles{}, err
			}
			if idx == roles.Gender {
				return Roles{}, NewConfigurationError(name, RoleNumeric,
					fmt.Errorf("%w: gender column cannot be numeric", ErrInvalidColumns))
			}
			if excluded[idx] {
				return Roles{}, NewConfigurationError(name, RoleNumeric,
					fmt.Errorf("%w: column is both numeric and excluded", ErrInvalidColumns))
			}
			numeric[idx] = true
		}
	} else {
		for i := range columns {
			if i != roles.Gender && i != roles.Group && !excluded[i] {
				numeric[i] = true
			}
		}
	}

	for i := range columns {
		switch {
		case i == roles.Gender:
		case numeric[i]:
			roles.Numeric = append(roles.Numeric, i)
		default:
			roles.Passthrough = append(roles.Passthrough, i)
		}
	}
	return roles, nil
}
