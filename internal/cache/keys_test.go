package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "html",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "quizpage:quiz:html:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "html",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizpage:quiz:html:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "abc",
			paramsKey:   []string{"param1"},
			expectedKey: "quizpage:quiz:record:abc:param1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "abc",
			paramsKey:   []string{"p1", "p2"},
			expectedKey: "quizpage:quiz:record:abc:p1_p2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", got, tt.expectedKey)
			}
		})
	}
}

func TestQuizHTMLKey(t *testing.T) {
	got := QuizHTMLKey("01HZXCVBNM0123456789ABCDEF")
	want := "quizpage:quiz:html:01HZXCVBNM0123456789ABCDEF"
	if got != want {
		t.Errorf("QuizHTMLKey() = %v, want %v", got, want)
	}
}
