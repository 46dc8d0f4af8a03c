package reviewRepository

const (
	queryCreateReview = `
		INSERT INTO reviews (
			id,
			name,
			email,
			role,
			review,
			image_url,
			image_key,
			approved,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:role,
			:review,
			:image_url,
			:image_key,
			:approved,
			:created_at,
			:updated_at
		)
	`

	queryGetReviewByID = `
		SELECT
			id,
			name,
			email,
			role,
			review,
			image_url,
			image_key,
			approved,
			created_at,
			updated_at
		FROM reviews
		WHERE id = :id
	`

	queryGetAllReviews = `
		SELECT
			id,
			name,
			email,
			role,
			review,
			image_url,
			image_key,
			approved,
			created_at,
			updated_at
		FROM reviews
		ORDER BY created_at DESC
	`

	queryGetApprovedReviews = `
		SELECT
			id,
			name,
			email,
			role,
			review,
			image_url,
			image_key,
			approved,
			created_at,
			updated_at
		FROM reviews
		WHERE approved = TRUE
		ORDER BY created_at DESC
	`

	queryApproveReview = `
		UPDATE reviews
		SET
			approved = TRUE,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING
			id,
			name,
			email,
			role,
			review,
			image_url,
			image_key,
			approved,
			created_at,
			updated_at
	`

	queryUpdateReview = `
		UPDATE reviews
		SET
			name = COALESCE(:name, name),
			email = COALESCE(:email, email),
			role = COALESCE(:role, role),
			review = COALESCE(:review, review),
			image_url = COALESCE(:image_url, image_url),
			image_key = COALESCE(:image_key, image_key),
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteReview = `
		DELETE FROM reviews
		WHERE id = :id
	`
)
