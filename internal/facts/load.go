package facts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/prettymuchbryce/reportdetails/internal/pathutil"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a fact snapshot using the real filesystem.
func Load(path string) (*Facts, error) {
	return LoadWithFs(path, afero.NewOsFs())
}

// LoadWithFs reads a fact snapshot from the provided filesystem.
func LoadWithFs(path string, afs afero.Fs) (*Facts, error) {
	expanded := pathutil.ExpandTilde(path)

	data, err := afero.ReadFile(afs, expanded)
	if err != nil {
		return nil, err
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid facts in %s: %w", expanded, err)
	}
	return f, nil
}

// Parse decodes a snapshot. JSON documents (as exported by the data layer)
// are detected by content; everything else is read as YAML. Unknown keys
// are rejected so typos in fixtures do not silently evaluate as false.
func Parse(data []byte) (*Facts, error) {
	f := &Facts{}

	if mimetype.Detect(data).Is("application/json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, err
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	if f.Report.Type == "" {
		f.Report.Type = TypeChat
	}
	if f.Report.Status == "" {
		f.Report.Status = StatusOpen
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that every enumerated field holds a known value.
func (f *Facts) Validate() error {
	switch f.Report.Type {
	case TypeChat, TypeExpense, TypeIOU, TypeInvoice, TypeTask:
	default:
		return fmt.Errorf("unknown report type %q", f.Report.Type)
	}

	switch f.Report.ChatType {
	case ChatTypeNone, ChatTypeGroup, ChatTypePolicyRoom, ChatTypePolicyAdmins, ChatTypePolicyAnnounce,
		ChatTypeDomainAll, ChatTypePolicyExpenseChat, ChatTypeSelfDM, ChatTypeSystem, ChatTypeInvoice:
	default:
		return fmt.Errorf("unknown chat type %q", f.Report.ChatType)
	}

	switch f.Report.Visibility {
	case VisibilityNone, VisibilityPublic, VisibilityPublicAnnounce, VisibilityPrivate, VisibilityRestricted:
	default:
		return fmt.Errorf("unknown visibility %q", f.Report.Visibility)
	}

	switch f.Report.Status {
	case StatusOpen, StatusSubmitted, StatusApproved, StatusClosed, StatusReimbursed, StatusCanceled:
	default:
		return fmt.Errorf("unknown status %q", f.Report.Status)
	}

	if f.ParentAction != nil {
		switch f.ParentAction.Kind {
		case ActionTrackExpense, ActionMoneyRequest, ActionTask:
		default:
			return fmt.Errorf("unknown parent action kind %q", f.ParentAction.Kind)
		}
	}

	if f.Policy != nil {
		switch f.Policy.Role {
		case "", RoleAdmin, RoleAuditor, RoleUser:
		default:
			return fmt.Errorf("unknown policy role %q", f.Policy.Role)
		}
	}

	return nil
}

// Glob expands a doublestar pattern (e.g. "fixtures/**/*.yaml") against the
// filesystem and returns the matching files in sorted order.
func Glob(afs afero.Fs, pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pathutil.ExpandTilde(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	base, rel := doublestar.SplitPattern(pattern)

	// BasePathFs rejects relative roots, so "." globs the fs directly.
	fsys := afs
	if base != "." {
		fsys = afero.NewBasePathFs(afs, base)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fsys), rel, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
	}

	for i, m := range matches {
		if base != "." {
			m = path.Join(base, m)
		}
		matches[i] = filepath.FromSlash(m)
	}
	sort.Strings(matches)

	return matches, nil
}
