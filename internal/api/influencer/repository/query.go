package influencerRepository

const (
	queryCreateInfluencer = `
		INSERT INTO influencers (
			id,
			name,
			description,
			pic_url,
			pic_key,
			keywords,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:description,
			:pic_url,
			:pic_key,
			:keywords,
			:created_at,
			:updated_at
		)
	`

	queryGetInfluencerByID = `
		SELECT
			id,
			name,
			description,
			pic_url,
			pic_key,
			keywords,
			created_at,
			updated_at
		FROM influencers
		WHERE id = :id
	`

	queryGetAllInfluencers = `
		SELECT
			id,
			name,
			description,
			pic_url,
			pic_key,
			keywords,
			created_at,
			updated_at
		FROM influencers
		ORDER BY created_at DESC
	`

	queryUpdateInfluencer = `
		UPDATE influencers
		SET
			name = COALESCE(:name, name),
			description = COALESCE(:description, description),
			pic_url = COALESCE(:pic_url, pic_url),
			pic_key = COALESCE(:pic_key, pic_key),
			keywords = COALESCE(:keywords, keywords),
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteInfluencer = `
		DELETE FROM influencers
		WHERE id = :id
	`
)
