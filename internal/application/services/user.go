package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-records-api/internal/application/ports"
	"user-records-api/internal/domain/manager"
	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/mq"
	dto "user-records-api/internal/interface/api/rest/dto/user"
	"user-records-api/internal/validator"
)

var (
	requiredCreateKeys = []string{"full_name", "mob_num", "pan_num", "manager_id"}
	requiredUpdateKeys = []string{"user_ids", "update_data"}
	allowedPatchKeys   = map[string]struct{}{
		"full_name":  {},
		"mob_num":    {},
		"pan_num":    {},
		"manager_id": {},
	}
)

type UserService struct {
	userRepository    domain.Repository
	managerRepository manager.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	managerRepository manager.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:    userRepository,
		managerRepository: managerRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

// CreateUser validates the four required fields, gates on an active
// manager and a free active mobile number, then inserts the new record
// with a fresh id and server-side timestamps.
func (us *UserService) CreateUser(ctx context.Context, body map[string]any) (*domain.User, error) {
	if missing := validator.MissingKeys(body, requiredCreateKeys); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing keys: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	fullName, ok := validator.FullName(body["full_name"])
	if !ok {
		return nil, fmt.Errorf("%w: full_name must not be empty", domain.ErrInvalidInput)
	}
	mobNum, ok := validator.NormalizeMobile(body["mob_num"])
	if !ok {
		return nil, fmt.Errorf("%w: mob_num must be a valid 10-digit number", domain.ErrInvalidInput)
	}
	panNum, ok := validator.PAN(body["pan_num"])
	if !ok {
		return nil, fmt.Errorf("%w: pan_num must be valid (ABCDE1234F)", domain.ErrInvalidInput)
	}
	managerID, ok := validator.UUIDv4(body["manager_id"])
	if !ok {
		return nil, fmt.Errorf("%w: manager_id must be a valid UUID v4", domain.ErrInvalidInput)
	}

	if err := us.assertActiveManager(ctx, managerID); err != nil {
		return nil, err
	}

	exists, err := us.userRepository.ExistsActiveMobile(ctx, mobNum)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateActiveMobile, mobNum)
	}

	now := time.Now().UTC()
	u := domain.User{
		UserID:    uuid.New(),
		FullName:  fullName,
		MobNum:    mobNum,
		PanNum:    panNum,
		ManagerID: managerID,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}

	if err = us.userRepository.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	us.publish(http.MethodPost, &u)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return &u, nil
}

// FindUsers resolves at most one selector with fixed precedence:
// user_id, then mob_num, then manager_id; the rest are ignored. With no
// selector every user is returned. Absence of matches is an empty list,
// not an error.
func (us *UserService) FindUsers(ctx context.Context, body map[string]any) (domain.Users, error) {
	if raw, ok := selector(body, "user_id"); ok {
		userID, valid := validator.UUIDv4(raw)
		if !valid {
			return nil, fmt.Errorf("%w: user_id must be a valid UUID v4", domain.ErrInvalidInput)
		}
		u, err := us.userRepository.FetchUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return domain.Users{}, nil
		}
		return domain.Users{u}, nil
	}

	if raw, ok := selector(body, "mob_num"); ok {
		mobNum, valid := validator.NormalizeMobile(raw)
		if !valid {
			return nil, fmt.Errorf("%w: mob_num must be a valid 10-digit number", domain.ErrInvalidInput)
		}
		return us.userRepository.FetchUsersByMobile(ctx, mobNum)
	}

	if raw, ok := selector(body, "manager_id"); ok {
		managerID, valid := validator.UUIDv4(raw)
		if !valid {
			return nil, fmt.Errorf("%w: manager_id must be a valid UUID v4", domain.ErrInvalidInput)
		}
		return us.userRepository.FetchUsersByManager(ctx, managerID)
	}

	return us.userRepository.FetchUsers(ctx)
}

// DeleteUser hard-deletes a single record by user_id or, when only a
// mobile number is given, by its single normalized match. A mobile
// number matching more than one record is a conflict the caller must
// resolve by id.
func (us *UserService) DeleteUser(ctx context.Context, body map[string]any) (*domain.User, error) {
	idRaw, hasID := selector(body, "user_id")
	mobRaw, hasMob := selector(body, "mob_num")
	if !hasID && !hasMob {
		return nil, fmt.Errorf("%w: user_id or mob_num is required", domain.ErrInvalidInput)
	}

	if hasID {
		userID, valid := validator.UUIDv4(idRaw)
		if !valid {
			return nil, fmt.Errorf("%w: user_id must be a valid UUID v4", domain.ErrInvalidInput)
		}
		u, err := us.userRepository.FetchUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, userID)
		}
		if err = us.userRepository.DeleteUserByID(ctx, userID); err != nil {
			return nil, err
		}

		us.publish(http.MethodDelete, u)
		us.mCounter.WithLabelValues("user_deleted_total").Inc()

		return u, nil
	}

	mobNum, valid := validator.NormalizeMobile(mobRaw)
	if !valid {
		return nil, fmt.Errorf("%w: mob_num must be a valid 10-digit number", domain.ErrInvalidInput)
	}
	matches, err := us.userRepository.FetchUsersByMobile(ctx, mobNum)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, mobNum)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrAmbiguousMobile, mobNum)
	}

	if _, err = us.userRepository.DeleteUserByMobile(ctx, mobNum); err != nil {
		return nil, err
	}

	us.publish(http.MethodDelete, matches[0])
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return matches[0], nil
}

// UpdateUsers applies one patch to every listed id. The patch is
// validated once, a present manager_id passes the activity gate once,
// and the store then updates every row inside a single transaction or
// none at all.
func (us *UserService) UpdateUsers(ctx context.Context, body map[string]any) (domain.Users, error) {
	if missing := validator.MissingKeys(body, requiredUpdateKeys); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing keys: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	rawIDs, err := coerceIDList(body["user_ids"])
	if err != nil {
		return nil, err
	}

	patchRaw, ok := body["update_data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: update_data must be an object", domain.ErrInvalidInput)
	}
	for key := range patchRaw {
		if _, allowed := allowedPatchKeys[key]; !allowed {
			return nil, fmt.Errorf("%w: invalid key %s", domain.ErrInvalidInput, key)
		}
	}

	var patch domain.Patch
	if raw, present := patchRaw["full_name"]; present {
		fullName, valid := validator.FullName(raw)
		if !valid {
			return nil, fmt.Errorf("%w: full_name must not be empty", domain.ErrInvalidInput)
		}
		patch.FullName = &fullName
	}
	if raw, present := patchRaw["mob_num"]; present {
		mobNum, valid := validator.NormalizeMobile(raw)
		if !valid {
			return nil, fmt.Errorf("%w: mob_num must be a valid 10-digit number", domain.ErrInvalidInput)
		}
		patch.MobNum = &mobNum
	}
	if raw, present := patchRaw["pan_num"]; present {
		panNum, valid := validator.PAN(raw)
		if !valid {
			return nil, fmt.Errorf("%w: pan_num must be valid (ABCDE1234F)", domain.ErrInvalidInput)
		}
		patch.PanNum = &panNum
	}
	if raw, present := patchRaw["manager_id"]; present {
		managerID, valid := validator.UUIDv4(raw)
		if !valid {
			return nil, fmt.Errorf("%w: manager_id must be a valid UUID v4", domain.ErrInvalidInput)
		}
		if err = us.assertActiveManager(ctx, managerID); err != nil {
			return nil, err
		}
		patch.ManagerID = &managerID
	}

	userIDs := make([]domain.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		userID, valid := validator.UUIDv4(raw)
		if !valid {
			return nil, fmt.Errorf("%w: user_ids contains an invalid UUID: %v", domain.ErrInvalidInput, raw)
		}
		userIDs = append(userIDs, userID)
	}

	updated, err := us.userRepository.UpdateUsersFields(ctx, userIDs, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	for _, u := range updated {
		us.publish(http.MethodPatch, u)
	}
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return updated, nil
}

// DeactivateUser soft-deactivates one record, freeing its mobile number
// for reuse by a future active user.
func (us *UserService) DeactivateUser(ctx context.Context, userID domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.DeactivateUser(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPatch, u)
	us.mCounter.WithLabelValues("user_deactivated_total").Inc()

	return u, nil
}

func (us *UserService) assertActiveManager(ctx context.Context, managerID manager.UUID) error {
	m, err := us.managerRepository.FetchManager(ctx, managerID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("%w: %s", domain.ErrManagerNotFound, managerID)
	}
	if !m.IsActive {
		return fmt.Errorf("%w: %s", domain.ErrManagerInactive, managerID)
	}

	return nil
}

func (us *UserService) publish(method string, u *domain.User) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  u.UserID.String(),
		Payload: dto.ToResponseUser(*u),
	}
}

// selector reports whether key carries a usable value: present, non-nil
// and not an empty string.
func selector(body map[string]any, key string) (any, bool) {
	v, ok := body[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}

	return v, true
}

// coerceIDList accepts a single identifier or a list of them; a lone
// string becomes a one-element list.
func coerceIDList(raw any) ([]any, error) {
	switch v := raw.(type) {
	case string:
		return []any{v}, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: user_ids must be a non-empty list", domain.ErrInvalidInput)
		}
		return v, nil
	case []string:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: user_ids must be a non-empty list", domain.ErrInvalidInput)
		}
		ids := make([]any, len(v))
		for i, s := range v {
			ids[i] = s
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%w: user_ids must be a non-empty list", domain.ErrInvalidInput)
	}
}
