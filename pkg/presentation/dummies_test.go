package presentation

import (
	"time"

	"github.com/jesseduffield/lazyls/pkg/commands"
	"github.com/jesseduffield/lazyls/pkg/config"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	metadata   map[string]*commands.Metadata
	links      map[string]string
	live       map[string]bool
	attributes map[string][]string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		metadata:   map[string]*commands.Metadata{},
		links:      map[string]string{},
		live:       map[string]bool{},
		attributes: map[string][]string{},
	}
}

func (s *fakeSource) Metadata(path string) (*commands.Metadata, error) {
	if m, ok := s.metadata[path]; ok {
		return m, nil
	}
	return nil, commands.NewComplexError(commands.NotFound, path, path+": no such file or directory")
}

func (s *fakeSource) ReadLink(path string) (string, error) {
	return s.links[path], nil
}

func (s *fakeSource) TargetExists(link string) bool {
	return s.live[link]
}

func (s *fakeSource) ListAttributes(path string) []string {
	if names, ok := s.attributes[path]; ok {
		return names
	}
	return []string{}
}

func (s *fakeSource) addFile(path string, size int64, permissions uint32) *commands.Metadata {
	m := &commands.Metadata{
		Type:        commands.FileTypeRegular,
		Permissions: permissions,
		Uid:         1000,
		Gid:         100,
		Nlink:       1,
		Size:        size,
		Inode:       42,
		Modified:    testNow.Add(-10 * day),
		Accessed:    testNow.Add(-time.Hour),
		Changed:     testNow.Add(-2 * day),
		Created:     testNow.Add(-800 * day),
	}
	s.metadata[path] = m
	return m
}

func (s *fakeSource) addDir(path string) {
	s.metadata[path] = &commands.Metadata{
		Type:        commands.FileTypeDirectory,
		Permissions: 0o755,
		Uid:         1000,
		Gid:         100,
		Nlink:       2,
		Size:        4096,
		Modified:    testNow.Add(-10 * day),
	}
}

func (s *fakeSource) addLink(path string, target string, live bool) {
	s.metadata[path] = &commands.Metadata{
		Type:        commands.FileTypeSymlink,
		Permissions: 0o777,
		Uid:         1000,
		Gid:         100,
		Nlink:       1,
		Size:        int64(len(target)),
		Modified:    testNow.Add(-10 * day),
	}
	s.links[path] = target
	s.live[path] = live
}

func newTestRenderer(listingConfig *config.ListingConfig, source MetadataSource) *Renderer {
	identity := commands.NewDummyNameResolver(
		map[string]string{"1000": "jesse"},
		map[string]string{"100": "users"},
	)
	renderer := NewRenderer(commands.NewDummyLog(), listingConfig, DefaultTheme(), source, identity)
	renderer.SetClock(func() time.Time { return testNow }, time.UTC)
	return renderer
}
