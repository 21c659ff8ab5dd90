package manager

const (
	SelectManagerByID = `
		SELECT manager_id, is_active
		FROM managers
		WHERE manager_id = $1
	`
	CountManagers       = `SELECT COUNT(*) FROM managers`
	CountActiveManagers = `SELECT COUNT(*) FROM managers WHERE is_active`
)
