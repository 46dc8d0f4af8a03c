package authRepository

const queryGetAdminByEmail = `
	SELECT
		id,
		email,
		password_hash,
		created_at
	FROM admins
	WHERE email = :email
`
