// Copyright (c) 2025-2026 Taafé Vision
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// testDB creates a migrated temporary database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	return db
}

func TestCreateAndGetUser(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	created, err := q.CreateUser(ctx, CreateUserParams{
		Username:     "admin",
		PasswordHash: "hashed-password",
		IsAdmin:      true,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == 0 {
		t.Error("created user should have a non-zero id")
	}
	if !created.IsAdmin {
		t.Error("created user should be admin")
	}

	byName, err := q.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName.ID != created.ID {
		t.Errorf("GetUserByUsername id = %d, want %d", byName.ID, created.ID)
	}

	byID, err := q.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Username != "admin" {
		t.Errorf("GetUserByID username = %q, want %q", byID.Username, "admin")
	}
}

func TestGetUserNotFound(t *testing.T) {
	q := New(testDB(t))

	_, err := q.GetUserByUsername(context.Background(), "nobody")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetUserByUsername error = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	u, err := q.CreateUser(ctx, CreateUserParams{Username: "admin", PasswordHash: "old", IsAdmin: true})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := q.UpdateUserPassword(ctx, u.ID, "new"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	got, err := q.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.PasswordHash != "new" {
		t.Errorf("password hash = %q, want %q", got.PasswordHash, "new")
	}
}

func TestProjectCRUD(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	created, err := q.CreateProject(ctx, CreateProjectParams{
		Title:       "Elles se réalisent",
		Description: "Formation de femmes réalisatrices.",
		ImageURL:    "/images/p1.jpg",
		Date:        strptr("2023-2024"),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.Date == nil || *created.Date != "2023-2024" {
		t.Errorf("created date = %v, want 2023-2024", created.Date)
	}
	if created.IsHidden {
		t.Error("new project should not be hidden")
	}

	updated, err := q.UpdateProject(ctx, UpdateProjectParams{
		ID:          created.ID,
		Title:       "Elles se réalisent (2e édition)",
		Description: created.Description,
		ImageURL:    created.ImageURL,
		Date:        nil,
		IsHidden:    true,
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.Title != "Elles se réalisent (2e édition)" {
		t.Errorf("updated title = %q", updated.Title)
	}
	if updated.Date != nil {
		t.Errorf("updated date = %v, want nil", updated.Date)
	}
	if !updated.IsHidden {
		t.Error("updated project should be hidden")
	}

	list, err := q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListProjects returned %d projects, want 1", len(list))
	}

	if err := q.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := q.GetProjectByID(ctx, created.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetProjectByID after delete error = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	q := New(testDB(t))

	_, err := q.UpdateProject(context.Background(), UpdateProjectParams{ID: 999999, Title: "x"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("UpdateProject error = %v, want sql.ErrNoRows", err)
	}
}

func TestDeleteProjectMissingID(t *testing.T) {
	q := New(testDB(t))

	if err := q.DeleteProject(context.Background(), 999999); err != nil {
		t.Errorf("DeleteProject on missing id should succeed, got %v", err)
	}
}

func TestFilmCRUD(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	created, err := q.CreateFilm(ctx, CreateFilmParams{
		Title:    "A TOUT PRIX",
		Director: "Maimouna OUEDRAOGO",
		Synopsis: "Un couple face à une décision.",
		Year:     2024,
		ImageURL: "/images/f1.jpg",
		VideoURL: strptr("#"),
	})
	if err != nil {
		t.Fatalf("CreateFilm: %v", err)
	}
	if created.Year != 2024 {
		t.Errorf("created year = %d, want 2024", created.Year)
	}

	updated, err := q.UpdateFilm(ctx, UpdateFilmParams{
		ID:       created.ID,
		Title:    created.Title,
		Director: created.Director,
		Synopsis: created.Synopsis,
		Year:     2025,
		ImageURL: created.ImageURL,
		VideoURL: nil,
		IsHidden: false,
	})
	if err != nil {
		t.Fatalf("UpdateFilm: %v", err)
	}
	if updated.Year != 2025 {
		t.Errorf("updated year = %d, want 2025", updated.Year)
	}
	if updated.VideoURL != nil {
		t.Errorf("updated video url = %v, want nil", updated.VideoURL)
	}

	if err := q.DeleteFilm(ctx, created.ID); err != nil {
		t.Fatalf("DeleteFilm: %v", err)
	}
	n, err := q.CountFilms(ctx)
	if err != nil {
		t.Fatalf("CountFilms: %v", err)
	}
	if n != 0 {
		t.Errorf("CountFilms = %d, want 0", n)
	}
}

func TestListArticlesNewestFirst(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"older", "middle", "newest"} {
		_, err := q.CreateArticle(ctx, CreateArticleParams{
			Title:     title,
			Content:   "content",
			Category:  "news",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("CreateArticle %q: %v", title, err)
		}
	}

	list, err := q.ListArticles(ctx)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ListArticles returned %d articles, want 3", len(list))
	}
	if list[0].Title != "newest" || list[2].Title != "older" {
		t.Errorf("articles out of order: %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestUpdateArticleKeepsCreatedAt(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	createdAt := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	created, err := q.CreateArticle(ctx, CreateArticleParams{
		Title:     "Lancement du projet",
		Content:   "texte",
		Category:  "news",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	updated, err := q.UpdateArticle(ctx, UpdateArticleParams{
		ID:       created.ID,
		Title:    "Lancement du projet (mis à jour)",
		Content:  created.Content,
		Category: "event",
		IsHidden: true,
	})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Errorf("updated createdAt = %v, want %v", updated.CreatedAt, createdAt)
	}
	if updated.Category != "event" {
		t.Errorf("updated category = %q, want event", updated.Category)
	}
}

func TestPartnerCreateListDelete(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	first, err := q.CreatePartner(ctx, CreatePartnerParams{
		Name:    "FESPACO",
		LogoURL: "/images/logo.jpg",
		Website: strptr("https://fespaco.org"),
	})
	if err != nil {
		t.Fatalf("CreatePartner: %v", err)
	}
	_, err = q.CreatePartner(ctx, CreatePartnerParams{
		Name:    "Equipop",
		LogoURL: "/images/equipop.jpg",
	})
	if err != nil {
		t.Fatalf("CreatePartner: %v", err)
	}

	list, err := q.ListPartners(ctx)
	if err != nil {
		t.Fatalf("ListPartners: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListPartners returned %d partners, want 2", len(list))
	}
	if list[0].Name != "FESPACO" {
		t.Errorf("first partner = %q, want FESPACO", list[0].Name)
	}
	if list[1].Website != nil {
		t.Errorf("partner without website should have nil, got %v", list[1].Website)
	}

	if err := q.DeletePartner(ctx, first.ID); err != nil {
		t.Fatalf("DeletePartner: %v", err)
	}
	n, err := q.CountPartners(ctx)
	if err != nil {
		t.Fatalf("CountPartners: %v", err)
	}
	if n != 1 {
		t.Errorf("CountPartners = %d, want 1", n)
	}
}

func TestContactsNewestFirst(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"Awa", "Binta"} {
		_, err := q.CreateContact(ctx, CreateContactParams{
			Name:      name,
			Email:     name + "@example.org",
			Message:   "Bonjour",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("CreateContact %q: %v", name, err)
		}
	}

	list, err := q.ListContacts(ctx)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListContacts returned %d contacts, want 2", len(list))
	}
	if list[0].Name != "Binta" {
		t.Errorf("first contact = %q, want Binta (newest)", list[0].Name)
	}
}

func TestUpsertSetting(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	first, err := q.UpsertSetting(ctx, UpsertSettingParams{
		Key:       "site.title",
		Value:     "Taafé Vision",
		UpdatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}

	second, err := q.UpsertSetting(ctx, UpsertSettingParams{
		Key:       "site.title",
		Value:     "Taafé Vision, cinéma au féminin",
		UpdatedAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("UpsertSetting (update): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d != %d", second.ID, first.ID)
	}
	if second.Value == first.Value {
		t.Error("upsert should have replaced the value")
	}

	settings, err := q.ListSettings(ctx)
	if err != nil {
		t.Fatalf("ListSettings: %v", err)
	}
	if len(settings) != 1 {
		t.Errorf("ListSettings returned %d settings, want 1", len(settings))
	}
}

func TestAdminLogsPagination(t *testing.T) {
	q := New(testDB(t))
	ctx := context.Background()

	admin, err := q.CreateUser(ctx, CreateUserParams{Username: "admin", PasswordHash: "h", IsAdmin: true})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := q.CreateAdminLog(ctx, CreateAdminLogParams{
			AdminID:   &admin.ID,
			Action:    "update",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("CreateAdminLog: %v", err)
		}
	}

	page, err := q.ListAdminLogs(ctx, ListAdminLogsParams{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("ListAdminLogs: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("ListAdminLogs returned %d logs, want 2", len(page))
	}
	if !page[0].CreatedAt.After(page[1].CreatedAt) {
		t.Error("logs should be ordered newest first")
	}

	total, err := q.CountAdminLogs(ctx)
	if err != nil {
		t.Fatalf("CountAdminLogs: %v", err)
	}
	if total != 5 {
		t.Errorf("CountAdminLogs = %d, want 5", total)
	}
}
