package videoRepository

const (
	queryCreateShortVideo = `
		INSERT INTO short_form_videos (
			id,
			video_id,
			created_at
		) VALUES (
			:id,
			:video_id,
			:created_at
		)
	`

	queryGetAllShortVideos = `
		SELECT
			id,
			video_id,
			created_at
		FROM short_form_videos
		ORDER BY created_at DESC
	`

	queryDeleteShortVideo = `
		DELETE FROM short_form_videos
		WHERE id = :id
	`

	queryCreateLongVideo = `
		INSERT INTO long_form_videos (
			id,
			title,
			video_id,
			created_at
		) VALUES (
			:id,
			:title,
			:video_id,
			:created_at
		)
	`

	queryGetAllLongVideos = `
		SELECT
			id,
			title,
			video_id,
			created_at
		FROM long_form_videos
		ORDER BY created_at DESC
	`

	queryDeleteLongVideo = `
		DELETE FROM long_form_videos
		WHERE id = :id
	`
)
