package faqRepository

const (
	queryCreateFAQ = `
		INSERT INTO faqs (
			id,
			question,
			answer,
			created_at,
			updated_at
		) VALUES (
			:id,
			:question,
			:answer,
			:created_at,
			:updated_at
		)
	`

	queryGetFAQByID = `
		SELECT
			id,
			question,
			answer,
			created_at,
			updated_at
		FROM faqs
		WHERE id = :id
	`

	queryGetAllFAQs = `
		SELECT
			id,
			question,
			answer,
			created_at,
			updated_at
		FROM faqs
		ORDER BY created_at ASC
	`

	queryUpdateFAQ = `
		UPDATE faqs
		SET
			question = COALESCE(:question, question),
			answer = COALESCE(:answer, answer),
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteFAQ = `
		DELETE FROM faqs
		WHERE id = :id
	`
)
