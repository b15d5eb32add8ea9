package service

import (
	"context"
	"fmt"
	"io"

	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/storage"
)

// mockMediaStore 内存版媒体存储，记录上传与删除轨迹
type mockMediaStore struct {
	stored  map[string][]byte // URL -> 内容
	removed []string          // 已删除的 URL
	seq     int
}

func newMockMediaStore() *mockMediaStore {
	return &mockMediaStore{stored: make(map[string][]byte)}
}

var _ storage.MediaStore = (*mockMediaStore)(nil)

func (m *mockMediaStore) Store(_ context.Context, reader io.Reader, _ int64, _, filename string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.seq++
	url := fmt.Sprintf("http://media.test/bucket/%03d_%s", m.seq, filename)
	m.stored[url] = data
	return url, nil
}

func (m *mockMediaStore) Remove(_ context.Context, publicURL string) error {
	if _, ok := m.stored[publicURL]; !ok {
		return storage.ErrForeignURL
	}
	delete(m.stored, publicURL)
	m.removed = append(m.removed, publicURL)
	return nil
}
