package usecases

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/employee"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

const msgDirectoryUnavailable = "HR system is unreachable and no backup data is available"

type ListEmployeesQuery struct {
	Principal policy.Principal
	// Search matches employee id, name or department, ignoring case and Vietnamese diacritics.
	Search     string
	Department string
}

type ListEmployeesUseCase struct {
	directory employee.Directory
	checker   policy.Checker
	logger    logger.Interface
}

func NewListEmployeesUseCase(directory employee.Directory, checker policy.Checker, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{
		directory: directory,
		checker:   checker,
		logger:    logger,
	}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, query ListEmployeesQuery) ([]employee.Employee, error) {
	uc.logger.Debugw("executing list employees use case", "user_id", query.Principal.UserID)

	if !uc.checker.Can(query.Principal, policy.ActionRead, policy.ResourceEmployee) {
		uc.logger.Warnw("employee directory access denied", "user_id", query.Principal.UserID, "role", query.Principal.Role)
		return nil, errors.NewForbiddenError("Permission denied")
	}

	all, err := uc.directory.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load employee directory", "error", err)
		return nil, errors.NewServiceUnavailableError(msgDirectoryUnavailable)
	}
	if len(all) == 0 {
		uc.logger.Warnw("employee directory returned no records")
		return nil, errors.NewServiceUnavailableError(msgDirectoryUnavailable)
	}

	search := foldKey(strings.TrimSpace(query.Search))
	department := foldKey(strings.TrimSpace(query.Department))

	out := make([]employee.Employee, 0, len(all))
	for _, e := range all {
		if department != "" && foldKey(e.Department) != department {
			continue
		}
		if search != "" && !matches(e, search) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func matches(e employee.Employee, needle string) bool {
	for _, field := range []string{e.EmployeeID, e.Name, e.Department} {
		if strings.Contains(foldKey(field), needle) {
			return true
		}
	}
	return false
}

// foldKey case-folds s and strips combining marks, so "Nguyễn Đức" and "nguyen duc" compare equal.
// Casers and transformers keep state, so each call builds its own.
func foldKey(s string) string {
	if s == "" {
		return s
	}
	strip := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			// đ has no decomposition
			switch r {
			case 'đ', 'Đ':
				return 'd'
			}
			return r
		}),
		norm.NFC,
	)
	out, _, err := transform.String(strip, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}
