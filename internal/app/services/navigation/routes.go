package navigation

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"strings"
)

type Meta struct {
	RequiresAuth bool
	Role         models.Role
}

// Route is one entry of the route table. Child paths are relative to the
// parent. After NewTable the Path of every record is absolute and Meta holds
// the parent's fields merged with the record's own.
type Route struct {
	Path     string
	Name     string
	View     string
	Redirect string
	Meta     Meta
	Children []Route
}

// DefaultRoutes is the portal route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: constvars.RoutePathRoot, Redirect: constvars.RoutePathLogin},
		{Path: constvars.RoutePathLogin, Name: constvars.RouteNameLogin, View: "Login"},
		{
			Path: constvars.RoutePathDoctorDashboard,
			View: "DoctorLayout",
			Meta: Meta{RequiresAuth: true, Role: models.RoleDoctor},
			Children: []Route{
				{Path: "", Name: constvars.RouteNameDoctorDashboard, View: "DoctorHome"},
				{Path: "diagnosis/new", Name: constvars.RouteNameNewDiagnosis, View: "NewDiagnosis"},
				{Path: "diagnosis/history", Name: constvars.RouteNameDiagnosisHistory, View: "DiagnosisHistory"},
				{Path: "reports/pending", Name: constvars.RouteNamePendingReports, View: "PendingReports"},
				{Path: "reports/list", Name: constvars.RouteNameReportsList, View: "ReportsList"},
				{Path: "reports/:id", Name: constvars.RouteNameReportDetail, View: "ReportDetail"},
				{Path: "settings", Name: constvars.RouteNameSettings, View: "Settings"},
			},
		},
		{
			Path: constvars.RoutePathPatientDashboard,
			Name: constvars.RouteNamePatientDashboard,
			View: "PatientDashboard",
			Meta: Meta{RequiresAuth: true, Role: models.RolePatient},
		},
	}
}

// Table is the flattened, read only route table.
type Table struct {
	records []*Route
}

// Match is a concrete path resolved against the table.
type Match struct {
	Route  *Route
	Path   string
	Params map[string]string
}

func NewTable(routes []Route) *Table {
	table := &Table{}
	for _, route := range routes {
		table.add(route, "", Meta{})
	}
	return table
}

func (t *Table) add(route Route, parentPath string, parentMeta Meta) {
	record := route
	record.Path = joinPath(parentPath, route.Path)
	record.Meta = mergeMeta(parentMeta, route.Meta)
	record.Children = nil

	// A parent with children matches through its empty-path child.
	if len(route.Children) == 0 || route.Redirect != "" {
		t.records = append(t.records, &record)
	}
	for _, child := range route.Children {
		t.add(child, record.Path, record.Meta)
	}
}

func (t *Table) Records() []*Route {
	return t.records
}

func (t *Table) ByName(name string) (*Route, bool) {
	for _, record := range t.records {
		if record.Name == name {
			return record, true
		}
	}
	return nil, false
}

// Match returns the first record whose pattern matches path. A ":name"
// segment matches any single non empty segment.
func (t *Table) Match(path string) (*Match, bool) {
	segments := splitPath(path)
	for _, record := range t.records {
		params, ok := matchSegments(splitPath(record.Path), segments)
		if ok {
			return &Match{
				Route:  record,
				Path:   "/" + strings.Join(segments, "/"),
				Params: params,
			}, true
		}
	}
	return nil, false
}

// Resolve is Match followed by the record's redirect, if any.
func (t *Table) Resolve(path string) (*Match, bool) {
	match, ok := t.Match(path)
	for hops := 0; ok && match.Route.Redirect != "" && hops < len(t.records); hops++ {
		match, ok = t.Match(match.Route.Redirect)
	}
	return match, ok
}

func matchSegments(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, part := range pattern {
		if strings.HasPrefix(part, ":") {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[strings.TrimPrefix(part, ":")] = segments[i]
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

func joinPath(parent, child string) string {
	if strings.HasPrefix(child, "/") {
		return child
	}
	if child == "" {
		if parent == "" {
			return "/"
		}
		return parent
	}
	return strings.TrimRight(parent, "/") + "/" + child
}

func mergeMeta(parent, own Meta) Meta {
	merged := parent
	if own.RequiresAuth {
		merged.RequiresAuth = true
	}
	if own.Role != models.RoleNone {
		merged.Role = own.Role
	}
	return merged
}

// ContextWithMatch stores the match a guarded page is served for.
func ContextWithMatch(ctx context.Context, match *Match) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ROUTE_KEY, match)
}

func MatchFromContext(ctx context.Context) (*Match, bool) {
	match, ok := ctx.Value(constvars.CONTEXT_ROUTE_KEY).(*Match)
	return match, ok && match != nil
}
