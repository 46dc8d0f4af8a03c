package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			slug,
			excerpt,
			content,
			reading_time,
			category,
			views,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:slug,
			:excerpt,
			:content,
			:reading_time,
			:category,
			:views,
			:created_at,
			:updated_at
		)
	`

	queryAddBlogImage = `
		INSERT INTO blog_images (
			id,
			blog_id,
			url,
			object_key,
			position
		) VALUES (
			:id,
			:blog_id,
			:url,
			:object_key,
			:position
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			slug,
			excerpt,
			content,
			reading_time,
			category,
			views,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetBlogImages = `
		SELECT
			id,
			blog_id,
			url,
			object_key,
			position
		FROM blog_images
		WHERE blog_id = :blog_id
		ORDER BY position ASC
	`

	queryListBlogsBase = `
		SELECT
			id,
			title,
			slug,
			excerpt,
			content,
			reading_time,
			category,
			views,
			created_at,
			updated_at
		FROM blogs
		WHERE 1 = 1
	`

	queryCountBlogsBase = `
		SELECT COUNT(*)
		FROM blogs
		WHERE 1 = 1
	`

	querySearchClause = `
		AND (title ILIKE :pattern OR excerpt ILIKE :pattern OR content ILIKE :pattern)
	`

	queryCategoryClause = `
		AND category = :category
	`

	queryListBlogsTail = `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryIncrementViewsBySlug = `
		UPDATE blogs
		SET views = views + 1
		WHERE slug = :slug
		RETURNING
			id,
			title,
			slug,
			excerpt,
			content,
			reading_time,
			category,
			views,
			created_at,
			updated_at
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = COALESCE(:title, title),
			slug = COALESCE(:slug, slug),
			excerpt = COALESCE(:excerpt, excerpt),
			content = COALESCE(:content, content),
			reading_time = COALESCE(:reading_time, reading_time),
			category = COALESCE(:category, category),
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlogImage = `
		DELETE FROM blog_images
		WHERE id = :id
	`

	queryDeleteBlogImages = `
		DELETE FROM blog_images
		WHERE blog_id = :blog_id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
