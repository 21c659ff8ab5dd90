package user

const (
	SelectUsers = `
		SELECT user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
		FROM users
		ORDER BY created_at, user_id
	`
	SelectUserByID = `
		SELECT user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
		FROM users
		WHERE user_id = $1
	`
	SelectUsersByMobile = `
		SELECT user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
		FROM users
		WHERE mob_num = $1
		ORDER BY created_at, user_id
	`
	SelectUsersByManager = `
		SELECT user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
		FROM users
		WHERE manager_id = $1
		ORDER BY created_at, user_id
	`
	SelectUserByIDForUpdate = `
		SELECT user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
		FROM users
		WHERE user_id = $1
		FOR UPDATE
	`
	InsertUser = `
		INSERT INTO users (user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	UpdateUserFields = `
		UPDATE users
		SET full_name = $1,
		    mob_num = $2,
		    pan_num = $3,
		    manager_id = $4,
		    updated_at = $5
		WHERE user_id = $6
	`
	DeleteUserByID     = `DELETE FROM users WHERE user_id = $1`
	DeleteUserByMobile = `DELETE FROM users WHERE mob_num = $1`
	ExistsActiveMobile = `SELECT EXISTS (SELECT 1 FROM users WHERE mob_num = $1 AND is_active)`
	DeactivateUserByID = `
		UPDATE users
		SET is_active = false,
		    updated_at = $2
		WHERE user_id = $1
		RETURNING user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active
	`
	CountUsers = `SELECT COUNT(*) FROM users`
)
