package blogService

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
	"testing"

	blogs "DigitalLab/internal/api/blog"
	blogsRepository "DigitalLab/internal/api/blog/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs  map[string]entity.Blog
	images map[string][]entity.BlogImage

	createErr    error
	addImagesErr error
	listResult   []entity.Blog
	listTotal    int
	lastFilter   blogsRepository.ListFilter
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		blogs:  make(map[string]entity.Blog),
		images: make(map[string][]entity.BlogImage),
	}
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog entity.Blog) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.blogs {
		if existing.Slug == blog.Slug {
			return blogs.ErrSlugTaken
		}
	}
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogStore) AddBlogImages(_ context.Context, images []entity.BlogImage) error {
	if f.addImagesErr != nil {
		return f.addImagesErr
	}
	for _, img := range images {
		f.images[img.BlogID] = append(f.images[img.BlogID], img)
	}
	return nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogStore) GetBlogImages(_ context.Context, blogID string) ([]entity.BlogImage, error) {
	images := append([]entity.BlogImage(nil), f.images[blogID]...)
	sort.Slice(images, func(i, j int) bool { return images[i].Position < images[j].Position })
	return images, nil
}

func (f *fakeBlogStore) ListBlogs(_ context.Context, filter blogsRepository.ListFilter) ([]entity.Blog, int, error) {
	f.lastFilter = filter
	return f.listResult, f.listTotal, nil
}

func (f *fakeBlogStore) IncrementViewsBySlug(_ context.Context, slug string) (entity.Blog, error) {
	for id, blog := range f.blogs {
		if blog.Slug == slug {
			blog.Views++
			f.blogs[id] = blog
			return blog, nil
		}
	}
	return entity.Blog{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogStore) UpdateBlog(_ context.Context, patch blogsRepository.BlogPatch) error {
	blog, ok := f.blogs[patch.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	if patch.Title != nil {
		blog.Title = *patch.Title
	}
	if patch.Slug != nil {
		blog.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		blog.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		blog.Content = *patch.Content
	}
	if patch.ReadingTime != nil {
		blog.ReadingTime = *patch.ReadingTime
	}
	if patch.Category != nil {
		blog.Category = *patch.Category
	}
	f.blogs[patch.ID] = blog
	return nil
}

func (f *fakeBlogStore) DeleteBlogImage(_ context.Context, imageID string) error {
	for blogID, images := range f.images {
		kept := images[:0]
		for _, img := range images {
			if img.ID != imageID {
				kept = append(kept, img)
			}
		}
		f.images[blogID] = kept
	}
	return nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(f.blogs, id)
	delete(f.images, id)
	return nil
}

type fakeBlogRepo struct {
	store *fakeBlogStore
}

func (f *fakeBlogRepo) NewClient(bool) (blogsRepository.Client, error) {
	return blogsRepository.Client{
		Blogs:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeS3 struct {
	uploads        int
	uploaded       []string
	deleted        []string
	failUploadAt   int
	failDeleteKeys map[string]bool
}

func (f *fakeS3) UploadFile(folder string, file *multipart.FileHeader) (string, string, error) {
	f.uploads++
	if f.failUploadAt != 0 && f.uploads == f.failUploadAt {
		return "", "", fmt.Errorf("upload failed")
	}
	key := fmt.Sprintf("%s/object-%d", folder, f.uploads)
	f.uploaded = append(f.uploaded, key)
	return "https://cdn.example.com/" + key, key, nil
}

func (f *fakeS3) DeleteFile(key string) error {
	if f.failDeleteKeys[key] {
		return fmt.Errorf("delete failed")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestService(store *fakeBlogStore, s3Client *fakeS3) IBlogsService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBlogsService(logger, &fakeBlogRepo{store: store}, s3Client, utils.New())
}

func imageFile(name string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func imageFiles(n int) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, imageFile(fmt.Sprintf("img-%d.png", i)))
	}
	return files
}

func TestCreateBlogRequiresImages(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "A Title",
		Excerpt:  "An excerpt",
		Content:  "Some content",
		Category: "news",
	}, nil)

	assert.ErrorIs(t, err, blogs.ErrImagesRequired)
}

func TestCreateBlogRejectsTooManyImages(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "A Title",
		Excerpt:  "An excerpt",
		Content:  "Some content",
		Category: "news",
	}, imageFiles(blogs.MaxImagesOnCreate+1))

	assert.ErrorIs(t, err, blogs.ErrTooManyImages)
}

func TestCreateBlogRejectsNonImageFile(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	bad := &multipart.FileHeader{
		Filename: "notes.txt",
		Size:     512,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"text/plain"}},
	}

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "A Title",
		Excerpt:  "An excerpt",
		Content:  "Some content",
		Category: "news",
	}, []*multipart.FileHeader{bad})

	assert.ErrorIs(t, err, blogs.ErrInvalidFileType)
}

func TestCreateBlogDerivesSlugAndReadingTime(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store, &fakeS3{})

	resp, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "Hello, World!",
		Excerpt:  "An excerpt",
		Content:  "just four short words",
		Category: "news",
	}, imageFiles(2))

	require.NoError(t, err)
	assert.Equal(t, "hello-world", resp.Slug)
	assert.Equal(t, 1, resp.ReadingTime)
	assert.Equal(t, 0, resp.Views)
	assert.Len(t, resp.Images, 2)
	assert.Len(t, store.blogs, 1)
}

func TestCreateBlogRollsBackUploadsOnStoreFailure(t *testing.T) {
	store := newFakeBlogStore()
	store.createErr = blogs.ErrCreateBlog
	s3Client := &fakeS3{}
	svc := newTestService(store, s3Client)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "A Title",
		Excerpt:  "An excerpt",
		Content:  "Some content",
		Category: "news",
	}, imageFiles(3))

	require.Error(t, err)
	assert.Len(t, store.blogs, 0)
	assert.ElementsMatch(t, s3Client.uploaded, s3Client.deleted)
}

func TestCreateBlogRollsBackEarlierUploadsOnUploadFailure(t *testing.T) {
	store := newFakeBlogStore()
	s3Client := &fakeS3{failUploadAt: 3}
	svc := newTestService(store, s3Client)

	_, err := svc.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "A Title",
		Excerpt:  "An excerpt",
		Content:  "Some content",
		Category: "news",
	}, imageFiles(3))

	assert.ErrorIs(t, err, blogs.ErrFailedToUpload)
	assert.Len(t, s3Client.deleted, 2)
}

func TestListBlogsPagination(t *testing.T) {
	store := newFakeBlogStore()
	store.listTotal = 13
	for i := 0; i < 6; i++ {
		store.listResult = append(store.listResult, entity.Blog{
			ID:    fmt.Sprintf("blog-%d", i),
			Title: fmt.Sprintf("Blog %d", i),
		})
	}
	svc := newTestService(store, &fakeS3{})

	resp, err := svc.ListBlogs(context.Background(), blogs.ListBlogsQuery{Page: 2, Limit: 6})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 6, resp.Limit)
	assert.Equal(t, 13, resp.TotalBlogs)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.True(t, resp.HasNext)
	assert.Len(t, resp.Blogs, 6)
}

func TestListBlogsDefaultsPageAndLimit(t *testing.T) {
	store := newFakeBlogStore()
	store.listTotal = 2
	svc := newTestService(store, &fakeS3{})

	resp, err := svc.ListBlogs(context.Background(), blogs.ListBlogsQuery{Page: 0, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, blogs.DefaultPageSize, resp.Limit)
	assert.False(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
}

func TestListBlogsCategoryAllMeansNoFilter(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store, &fakeS3{})

	_, err := svc.ListBlogs(context.Background(), blogs.ListBlogsQuery{Category: "all"})
	require.NoError(t, err)
	assert.Equal(t, "", store.lastFilter.Category)

	_, err = svc.ListBlogs(context.Background(), blogs.ListBlogsQuery{Category: "news"})
	require.NoError(t, err)
	assert.Equal(t, "news", store.lastFilter.Category)

	_, err = svc.ListBlogs(context.Background(), blogs.ListBlogsQuery{Search: "xyz"})
	require.NoError(t, err)
	assert.Equal(t, "xyz", store.lastFilter.Search)
	assert.Equal(t, "", store.lastFilter.Category)
}

func TestGetBlogBySlugIncrementsViews(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post", Views: 4}
	svc := newTestService(store, &fakeS3{})

	resp, err := svc.GetBlogBySlug(context.Background(), "post")
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Views)

	resp, err = svc.GetBlogBySlug(context.Background(), "post")
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Views)
}

func TestGetBlogBySlugNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	_, err := svc.GetBlogBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestUpdateBlogKeepSetMerge(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post"}
	store.images["b1"] = []entity.BlogImage{
		{ID: "i1", BlogID: "b1", URL: "https://cdn.example.com/a", ObjectKey: "a", Position: 0},
		{ID: "i2", BlogID: "b1", URL: "https://cdn.example.com/b", ObjectKey: "b", Position: 1},
		{ID: "i3", BlogID: "b1", URL: "https://cdn.example.com/c", ObjectKey: "c", Position: 2},
	}
	s3Client := &fakeS3{}
	svc := newTestService(store, s3Client)

	resp, err := svc.UpdateBlog(context.Background(), "b1", blogs.UpdateBlogRequest{},
		[]string{"https://cdn.example.com/b"}, imageFiles(1))

	require.NoError(t, err)
	// One kept plus one freshly uploaded.
	assert.Len(t, resp.Images, 2)
	assert.Contains(t, s3Client.deleted, "a")
	assert.Contains(t, s3Client.deleted, "c")
	assert.NotContains(t, s3Client.deleted, "b")
}

func TestUpdateBlogEmptyKeepSetDropsAllExisting(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post"}
	store.images["b1"] = []entity.BlogImage{
		{ID: "i1", BlogID: "b1", URL: "https://cdn.example.com/a", ObjectKey: "a", Position: 0},
	}
	s3Client := &fakeS3{}
	svc := newTestService(store, s3Client)

	resp, err := svc.UpdateBlog(context.Background(), "b1", blogs.UpdateBlogRequest{}, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, resp.Images)
	assert.Contains(t, s3Client.deleted, "a")
}

func TestUpdateBlogRejectsTooManyNewImages(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post"}
	svc := newTestService(store, &fakeS3{})

	_, err := svc.UpdateBlog(context.Background(), "b1", blogs.UpdateBlogRequest{},
		nil, imageFiles(blogs.MaxImagesOnUpdate+1))

	assert.ErrorIs(t, err, blogs.ErrTooManyImages)
}

func TestUpdateBlogTitleRecomputesSlug(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Old Title", Slug: "old-title", Content: "text"}
	svc := newTestService(store, &fakeS3{})

	newTitle := "Brand New Title"
	resp, err := svc.UpdateBlog(context.Background(), "b1",
		blogs.UpdateBlogRequest{Title: &newTitle}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Brand New Title", resp.Title)
	assert.Equal(t, "brand-new-title", resp.Slug)
}

func TestUpdateBlogContentRecomputesReadingTime(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post", ReadingTime: 1}
	svc := newTestService(store, &fakeS3{})

	content := ""
	for i := 0; i < 401; i++ {
		content += "word "
	}
	resp, err := svc.UpdateBlog(context.Background(), "b1",
		blogs.UpdateBlogRequest{Content: &content}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.ReadingTime)
}

func TestUpdateBlogNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	_, err := svc.UpdateBlog(context.Background(), "missing", blogs.UpdateBlogRequest{}, nil, nil)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteBlogAttemptsEveryImageDelete(t *testing.T) {
	store := newFakeBlogStore()
	store.blogs["b1"] = entity.Blog{ID: "b1", Title: "Post", Slug: "post"}
	store.images["b1"] = []entity.BlogImage{
		{ID: "i1", BlogID: "b1", URL: "u1", ObjectKey: "k1", Position: 0},
		{ID: "i2", BlogID: "b1", URL: "u2", ObjectKey: "k2", Position: 1},
		{ID: "i3", BlogID: "b1", URL: "u3", ObjectKey: "k3", Position: 2},
	}
	s3Client := &fakeS3{failDeleteKeys: map[string]bool{"k2": true}}
	svc := newTestService(store, s3Client)

	resp, err := svc.DeleteBlog(context.Background(), "b1")

	require.NoError(t, err)
	assert.Len(t, resp.Images, 3)
	// The failing object does not stop the others, nor the row delete.
	assert.ElementsMatch(t, []string{"k1", "k3"}, s3Client.deleted)
	assert.Len(t, store.blogs, 0)
}

func TestDeleteBlogNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore(), &fakeS3{})

	_, err := svc.DeleteBlog(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}
