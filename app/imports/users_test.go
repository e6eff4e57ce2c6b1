package imports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/davitra/go-backoffice/app/models"
	"golang.org/x/crypto/bcrypt"
)

func userRow(overrides map[string]string) Row {
	row := Row{
		"firstname": "Ana",
		"lastname":  "Silva",
		"email":     "ana@example.com",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestUserImportRequiresIdentityFields(t *testing.T) {
	users := &fakeUserRepo{}
	importer := NewUserImporter(users, &fakeRoleRepo{}, testLogger(), 0)

	report := importer.ImportRows(context.Background(), []Row{
		userRow(map[string]string{"email": ""}),
		userRow(map[string]string{"email": "not-an-email"}),
		userRow(map[string]string{"firstname": ""}),
	})

	if report.Imported != 0 || len(report.Errors) != 3 {
		t.Fatalf("report: %+v", report)
	}
	if !strings.Contains(report.Errors[0], "email is required") {
		t.Errorf("first error: %s", report.Errors[0])
	}
	if !strings.Contains(report.Errors[1], "valid email") {
		t.Errorf("second error: %s", report.Errors[1])
	}
	if len(users.users) != 0 {
		t.Error("no user should have been created")
	}
}

func TestUserImportAppliesDefaults(t *testing.T) {
	users := &fakeUserRepo{}
	importer := NewUserImporter(users, &fakeRoleRepo{}, testLogger(), 0)

	report := importer.ImportRows(context.Background(), []Row{userRow(nil)})
	if report.Imported != 1 || len(report.Errors) != 0 {
		t.Fatalf("report: %+v", report)
	}

	u := users.users[0]
	if u.Designation != models.DefaultDesignation {
		t.Errorf("designation default, got %q", u.Designation)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(defaultImportPassword)); err != nil {
		t.Error("password should be the hashed placeholder")
	}
}

func TestUserImportPartialMerge(t *testing.T) {
	users := &fakeUserRepo{}
	roles := &fakeRoleRepo{}
	importer := NewUserImporter(users, roles, testLogger(), 0)
	ctx := context.Background()

	importer.ImportRows(ctx, []Row{userRow(map[string]string{
		"phone":       "555-0101",
		"designation": "Buyer",
	})})
	firstPassword := users.users[0].Password

	// blanks keep stored values; provided fields overwrite
	importer.ImportRows(ctx, []Row{userRow(map[string]string{
		"firstname": "Anabela",
	})})

	if len(users.users) != 1 {
		t.Fatalf("expected one user, got %d", len(users.users))
	}
	u := users.users[0]
	if u.FirstName != "Anabela" {
		t.Errorf("firstname should update, got %q", u.FirstName)
	}
	if u.Phone != "555-0101" || u.Designation != "Buyer" {
		t.Errorf("blank optional fields must keep prior values: %+v", u)
	}
	if u.Password != firstPassword {
		t.Error("blank password must keep the stored hash")
	}
}

func TestUserImportReplacesRoles(t *testing.T) {
	users := &fakeUserRepo{}
	roles := &fakeRoleRepo{roles: []*models.Role{{ID: 1, Name: "admin", Slug: "admin"}}}
	importer := NewUserImporter(users, roles, testLogger(), 0)
	ctx := context.Background()

	importer.ImportRows(ctx, []Row{userRow(map[string]string{"roles": "Admin, Buyer"})})

	assigned := roles.assigned[users.users[0].ID]
	if len(assigned) != 2 {
		t.Fatalf("expected 2 roles assigned, got %v", assigned)
	}
	if assigned[0] != 1 {
		t.Errorf("existing admin role should resolve to id 1, got %d", assigned[0])
	}
	if len(roles.roles) != 2 {
		t.Errorf("buyer should have been auto-created, roles: %d", len(roles.roles))
	}

	// reimporting always detaches and reattaches, even unchanged
	importer.ImportRows(ctx, []Row{userRow(map[string]string{"roles": "Admin, Buyer"})})
	if roles.replaceCnt != 2 {
		t.Errorf("expected replace on every import, got %d calls", roles.replaceCnt)
	}
}

func TestUserImportDefaultRoleWhenNoneGiven(t *testing.T) {
	users := &fakeUserRepo{}
	roles := &fakeRoleRepo{}
	importer := NewUserImporter(users, roles, testLogger(), 0)

	importer.ImportRows(context.Background(), []Row{userRow(nil)})

	if len(roles.roles) != 1 || roles.roles[0].Name != models.DefaultRoleName {
		t.Fatalf("default role should be created and assigned: %+v", roles.roles)
	}
	if got := roles.assigned[users.users[0].ID]; len(got) != 1 {
		t.Errorf("assigned roles: %v", got)
	}
}

func TestUserImportRoleFailureKeepsUser(t *testing.T) {
	users := &fakeUserRepo{}
	roles := &fakeRoleRepo{replaceErr: errors.New("deadlock")}
	importer := NewUserImporter(users, roles, testLogger(), 0)

	report := importer.ImportRows(context.Background(), []Row{userRow(nil)})

	if report.Imported != 1 {
		t.Errorf("user import should count as imported, got %d", report.Imported)
	}
	if len(report.Errors) != 1 || !strings.Contains(report.Errors[0], "failed to assign roles") {
		t.Errorf("errors: %v", report.Errors)
	}
	if len(users.users) != 1 {
		t.Error("user must stay committed despite the role failure")
	}
}
