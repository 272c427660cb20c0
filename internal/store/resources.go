package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-job-tracker/models"
)

// table describes how a resource type maps onto its owner-scoped table.
// Every table has id, user_id, created_at and updated_at columns around the
// writable columns.
type table[T any] struct {
	name    string
	columns []string
	values  func(item *T) []any
	dest    func(item *T) []any

	// statusColumn enables ListFilter.Status when non-empty.
	statusColumn string
	orderBy      string

	// exclusive names a boolean column that may be true for at most one row
	// per user; isExclusive reports the flag of an item being written.
	exclusive   string
	isExclusive func(item *T) bool
}

func (t table[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+4)
	cols = append(cols, "id", "user_id")
	cols = append(cols, t.columns...)
	return append(cols, "created_at", "updated_at")
}

func (t table[T]) returning() string {
	return "RETURNING " + strings.Join(t.selectColumns(), ", ")
}

func (t table[T]) buildInsertQuery(b sq.StatementBuilderType, userID int64, item *T) (string, []any, error) {
	values := append([]any{userID}, t.values(item)...)

	return b.Insert(t.name).
		Columns(append([]string{"user_id"}, t.columns...)...).
		Values(values...).
		Suffix(t.returning()).
		ToSql()
}

func (t table[T]) buildGetQuery(b sq.StatementBuilderType, userID, id int64) (string, []any, error) {
	return b.Select(t.selectColumns()...).
		From(t.name).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func (t table[T]) buildListQuery(b sq.StatementBuilderType, userID int64, filter models.ListFilter) (string, []any, error) {
	query := b.Select(t.selectColumns()...).
		From(t.name).
		Where(sq.Eq{"user_id": userID})

	if filter.Status != "" && t.statusColumn != "" {
		query = query.Where(sq.Eq{t.statusColumn: filter.Status})
	}

	query = query.OrderBy(t.orderBy, "id DESC").Limit(pageSize(filter.Limit, defaultPageSize))
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return query.ToSql()
}

func (t table[T]) buildUpdateQuery(b sq.StatementBuilderType, userID, id int64, item *T, now time.Time) (string, []any, error) {
	query := b.Update(t.name)
	for i, value := range t.values(item) {
		query = query.Set(t.columns[i], value)
	}

	return query.
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(t.returning()).
		ToSql()
}

func (t table[T]) buildDeleteQuery(b sq.StatementBuilderType, userID, id int64) (string, []any, error) {
	return b.Delete(t.name).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildClearExclusiveQuery resets the exclusive flag on every other row
// of the user. A zero keepID clears all rows.
func (t table[T]) buildClearExclusiveQuery(b sq.StatementBuilderType, userID, keepID int64) (string, []any, error) {
	return b.Update(t.name).
		Set(t.exclusive, false).
		Where(sq.Eq{"user_id": userID, t.exclusive: true}).
		Where(sq.NotEq{"id": keepID}).
		ToSql()
}

var jobsTable = table[models.Job]{
	name: models.Job{}.TableName(),
	columns: []string{
		"company", "title", "location", "url", "status",
		"salary_range", "description", "notes", "applied_at",
	},
	values: func(j *models.Job) []any {
		return []any{j.Company, j.Title, j.Location, j.URL, j.Status, j.SalaryRange, j.Description, j.Notes, j.AppliedAt}
	},
	dest: func(j *models.Job) []any {
		return []any{
			&j.ID, &j.UserID, &j.Company, &j.Title, &j.Location, &j.URL, &j.Status,
			&j.SalaryRange, &j.Description, &j.Notes, &j.AppliedAt, &j.CreatedAt, &j.UpdatedAt,
		}
	},
	statusColumn: "status",
	orderBy:      "updated_at DESC",
}

var contactsTable = table[models.Contact]{
	name: models.Contact{}.TableName(),
	columns: []string{
		"name", "email", "phone", "company", "role", "linkedin_url", "notes", "last_contacted_at",
	},
	values: func(c *models.Contact) []any {
		return []any{c.Name, c.Email, c.Phone, c.Company, c.Role, c.LinkedInURL, c.Notes, c.LastContactedAt}
	},
	dest: func(c *models.Contact) []any {
		return []any{
			&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Role,
			&c.LinkedInURL, &c.Notes, &c.LastContactedAt, &c.CreatedAt, &c.UpdatedAt,
		}
	},
	orderBy: "name ASC",
}

var eventsTable = table[models.NetworkingEvent]{
	name: models.NetworkingEvent{}.TableName(),
	columns: []string{
		"title", "organizer", "location", "url", "starts_at", "ends_at",
		"status", "source", "external_id", "notes",
	},
	values: func(e *models.NetworkingEvent) []any {
		return []any{e.Title, e.Organizer, e.Location, e.URL, e.StartsAt.UTC(), e.EndsAt, e.Status, e.Source, e.ExternalID, e.Notes}
	},
	dest: func(e *models.NetworkingEvent) []any {
		return []any{
			&e.ID, &e.UserID, &e.Title, &e.Organizer, &e.Location, &e.URL, &e.StartsAt, &e.EndsAt,
			&e.Status, &e.Source, &e.ExternalID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		}
	},
	statusColumn: "status",
	orderBy:      "starts_at ASC",
}

var coverLettersTable = table[models.CoverLetter]{
	name:    models.CoverLetter{}.TableName(),
	columns: []string{"job_id", "title", "content", "generated"},
	values: func(c *models.CoverLetter) []any {
		return []any{c.JobID, c.Title, c.Content, c.Generated}
	},
	dest: func(c *models.CoverLetter) []any {
		return []any{&c.ID, &c.UserID, &c.JobID, &c.Title, &c.Content, &c.Generated, &c.CreatedAt, &c.UpdatedAt}
	},
	orderBy: "updated_at DESC",
}

var resumesTable = table[models.Resume]{
	name:    models.Resume{}.TableName(),
	columns: []string{"title", "summary", "content", "file_url", "is_default"},
	values: func(r *models.Resume) []any {
		return []any{r.Title, r.Summary, r.Content, r.FileURL, r.IsDefault}
	},
	dest: func(r *models.Resume) []any {
		return []any{&r.ID, &r.UserID, &r.Title, &r.Summary, &r.Content, &r.FileURL, &r.IsDefault, &r.CreatedAt, &r.UpdatedAt}
	},
	orderBy:     "updated_at DESC",
	exclusive:   "is_default",
	isExclusive: func(r *models.Resume) bool { return r.IsDefault },
}
