package imports

import (
	"context"
	"fmt"
	"strings"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// defaultImportPassword is hashed for users imported without a password.
const defaultImportPassword = "password"

// UserImporter upserts back-office users by email and replaces their
// role assignments on every occurrence.
type UserImporter struct {
	users     repositories.UserRepositoryImpl
	roles     repositories.RoleRepositoryImpl
	roleRef   refResolver
	validate  *validator.Validate
	logger    *logrus.Logger
	chunkSize int
}

func NewUserImporter(
	users repositories.UserRepositoryImpl,
	roles repositories.RoleRepositoryImpl,
	logger *logrus.Logger,
	chunkSize int,
) *UserImporter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &UserImporter{
		users:     users,
		roles:     roles,
		roleRef:   roleResolver(roles),
		validate:  validator.New(),
		logger:    logger,
		chunkSize: chunkSize,
	}
}

func (im *UserImporter) ImportFile(ctx context.Context, path string) (*Report, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return im.ImportRows(ctx, rows), nil
}

func (im *UserImporter) ImportRows(ctx context.Context, rows []Row) *Report {
	report := &Report{TotalRows: len(rows)}

	rowNum := 0
	for _, chunk := range chunkRows(rows, im.chunkSize) {
		for _, row := range chunk {
			rowNum++
			user, err := im.importRow(ctx, row)
			if err != nil {
				report.fail(rowNum, "%s", err.Error())
				im.logger.WithFields(logrus.Fields{
					"row":   rowNum,
					"email": row.Get("email"),
				}).Warn(err.Error())
				continue
			}
			report.Imported++

			// Role assignment failures are recorded on their own; the
			// user row above is already committed and stays.
			if err := im.assignRoles(ctx, user, NormalizeUserRow(row).Roles); err != nil {
				report.fail(rowNum, "failed to assign roles: %s", err.Error())
				im.logger.WithFields(logrus.Fields{
					"row":   rowNum,
					"email": user.Email,
				}).Warn(err.Error())
			}
		}
	}
	return report
}

func (im *UserImporter) importRow(ctx context.Context, row Row) (*models.User, error) {
	record := NormalizeUserRow(row)
	if err := im.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("%s", validationMessage(err))
	}

	existing, err := im.users.FindByEmail(ctx, record.Email)
	if err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}

	if existing != nil {
		// Existing users get a partial merge: blanks in the sheet keep
		// whatever value is already stored.
		existing.FirstName = record.FirstName
		existing.LastName = record.LastName
		if record.Phone != "" {
			existing.Phone = record.Phone
		}
		if record.Designation != "" {
			existing.Designation = record.Designation
		}
		if record.Password != "" {
			hash, err := hashPassword(record.Password)
			if err != nil {
				return nil, err
			}
			existing.Password = hash
		}
		if err := im.users.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return existing, nil
	}

	password := record.Password
	if password == "" {
		password = defaultImportPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	designation := record.Designation
	if designation == "" {
		designation = models.DefaultDesignation
	}

	user := &models.User{
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		Email:       record.Email,
		Phone:       record.Phone,
		Designation: designation,
		Password:    hash,
	}
	if err := im.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// assignRoles detaches the user's current roles and attaches the
// resolved set, falling back to the default role when the sheet gives
// none. This runs on every import of the user, changed or not.
func (im *UserImporter) assignRoles(ctx context.Context, user *models.User, rolesColumn string) error {
	names := []string{}
	for _, name := range strings.Split(rolesColumn, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = []string{models.DefaultRoleName}
	}

	roleIDs := make([]uint, 0, len(names))
	for _, name := range names {
		id, err := im.roleRef.resolve(ctx, name)
		if err != nil {
			return fmt.Errorf("role %q: %w", name, err)
		}
		if id != nil {
			roleIDs = append(roleIDs, *id)
		}
	}

	return im.roles.ReplaceForUser(ctx, user.ID, roleIDs)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
