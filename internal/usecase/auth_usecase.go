package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"
	"hospital-admin/internal/service"
	"hospital-admin/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrIDNumberAlreadyExists = errors.New("id number already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingRequiredField  = errors.New("missing required field")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, actorID int64, req *dto.RegisterDoctorRequest) (*dto.RegistrationResponse, error)
	RegisterPatient(ctx context.Context, actorID int64, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	sessions     service.SessionStore
	jwtService   *jwt.JWTService
	now          func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	sessions service.SessionStore,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		sessions:     sessions,
		jwtService:   jwtService,
		now:          time.Now,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	// A lost audit entry must not block the login itself.
	_ = u.auditService.Record(ctx, u.db, entity.AuditEvent{
		ActorID: &user.UserID,
		Action:  entity.AuditActionUserLogin,
		Details: entity.JSON{"username": user.Username},
	})

	return tokens, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Store(ctx, user.UserID,
		accessTokenID, u.jwtService.GetAccessExpiry(),
		refreshTokenID, u.jwtService.GetRefreshExpiry(),
	); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error {
	if err := u.sessions.Revoke(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		return err
	}

	_ = u.auditService.Record(ctx, u.db, entity.AuditEvent{ActorID: &userID, Action: entity.AuditActionUserLogout})
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	consumed, err := u.sessions.ConsumeRefresh(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// RegisterDoctor creates the doctor account and its profile in one transaction.
func (u *authUsecase) RegisterDoctor(ctx context.Context, actorID int64, req *dto.RegisterDoctorRequest) (*dto.RegistrationResponse, error) {
	if err := checkInsert(schema.Doctors, map[string]bool{
		"user_id":       true,
		"name":          strings.TrimSpace(req.Name) != "",
		"department":    strings.TrimSpace(req.Department) != "",
		"working_hours": strings.TrimSpace(req.WorkingHours) != "",
	}); err != nil {
		return nil, err
	}

	user, err := u.newUser(req.Username, req.Password, entity.UserTypeDoctor, req.Email, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	doctor := &entity.Doctor{
		Name:           req.Name,
		Department:     req.Department,
		Title:          req.Title,
		WorkingHours:   req.WorkingHours,
		ProfilePicture: req.ProfilePicture,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.createUser(tx, user); err != nil {
			return err
		}

		doctor.UserID = user.UserID
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			u.log.Warnf("Failed to create doctor: %+v", err)
			return err
		}

		return u.auditService.Record(ctx, tx, entity.AuditEvent{
			ActorID:  &actorID,
			Action:   entity.AuditActionDoctorRegister,
			Entity:   schema.Doctors.Name,
			EntityID: doctor.DoctorID,
			Details:  entity.JSON{"user_id": user.UserID, "name": doctor.Name, "department": doctor.Department},
		})
	})
	if err != nil {
		return nil, err
	}

	doctor.User = user
	return &dto.RegistrationResponse{
		User:   *converter.UserToResponse(user),
		Doctor: converter.DoctorToResponse(doctor),
	}, nil
}

// RegisterPatient creates the patient account and its profile in one transaction.
func (u *authUsecase) RegisterPatient(ctx context.Context, actorID int64, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := checkInsert(schema.Patients, map[string]bool{
		"user_id":    true,
		"name":       strings.TrimSpace(req.Name) != "",
		"gender":     req.Gender != "",
		"birth_date": true,
		"id_number":  strings.TrimSpace(req.IDNumber) != "",
	}); err != nil {
		return nil, err
	}

	user, err := u.newUser(req.Username, req.Password, entity.UserTypePatient, req.Email, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	patient := &entity.Patient{
		Name:        req.Name,
		Gender:      entity.Gender(req.Gender),
		BirthDate:   birthDate,
		IDNumber:    req.IDNumber,
		PhoneNumber: req.PhoneNumber,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.createUser(tx, user); err != nil {
			return err
		}

		patient.UserID = user.UserID
		if err := u.patientRepo.Create(tx, patient); err != nil {
			if isDuplicateKeyError(err, "id_number") {
				return ErrIDNumberAlreadyExists
			}
			u.log.Warnf("Failed to create patient: %+v", err)
			return err
		}

		return u.auditService.Record(ctx, tx, entity.AuditEvent{
			ActorID:  &actorID,
			Action:   entity.AuditActionPatientRegister,
			Entity:   schema.Patients.Name,
			EntityID: patient.PatientID,
			Details:  entity.JSON{"user_id": patient.UserID, "name": patient.Name},
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegistrationResponse{
		User:    *converter.UserToResponse(user),
		Patient: converter.PatientToResponse(patient, u.now(), u.log),
	}, nil
}

// checkInsert rejects a row whose present columns do not cover the table's required insert columns.
func checkInsert(table schema.Table, present map[string]bool) error {
	provided := make([]string, 0, len(present))
	for column, ok := range present {
		if ok {
			provided = append(provided, column)
		}
	}
	if missing := table.MissingOnInsert(provided); len(missing) > 0 {
		return fmt.Errorf("%w: %s.%s", ErrMissingRequiredField, table.Name, strings.Join(missing, ", "))
	}
	return nil
}

func (u *authUsecase) newUser(username, password string, userType entity.UserType, email, phone *string) (*entity.User, error) {
	if err := checkInsert(schema.Users, map[string]bool{
		"username":  strings.TrimSpace(username) != "",
		"password":  password != "",
		"user_type": userType != "",
	}); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	return &entity.User{
		Username:    username,
		Password:    string(hashedPassword),
		UserType:    userType,
		Email:       email,
		PhoneNumber: phone,
	}, nil
}

func (u *authUsecase) createUser(tx *gorm.DB, user *entity.User) error {
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
