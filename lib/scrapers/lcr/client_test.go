package lcr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"lcrassist/lib/telemetry"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	telemetry.SetupForTesting(t, "scrapers/lcr")

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		UnitNumber: "12345",
		Config:     Config{BaseURL: server.URL},
		SessionHeaders: map[string]string{
			"Cookie": "session=abc",
		},
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsEmptySessionHeaders(t *testing.T) {
	_, err := NewClient(ClientOptions{
		UnitNumber:     "12345",
		SessionHeaders: map[string]string{},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "session headers")
}

func TestMovedIn(t *testing.T) {
	var gotPath, gotCookie, gotAccept string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotCookie = r.Header.Get("Cookie")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`[{"name": "Doe, John", "moveDate": "2024-05-01", "priorUnitName": "Provo 1st Ward"}]`))
	}))

	people, err := client.MovedIn(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, []MovedInPerson{{
		Name:          "Doe, John",
		MoveDate:      "2024-05-01",
		PriorUnitName: "Provo 1st Ward",
	}}, people)

	require.Equal(t, "/api/report/members-moved-in/unit/12345/2?lang=eng", gotPath)
	require.Equal(t, "session=abc", gotCookie)
	require.Equal(t, "application/json", gotAccept)
}

func TestMemberProfile(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Write([]byte(`{"individual": {"moveDate": "20230115", "id": 42}}`))
	}))

	profile, err := client.MemberProfile(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, "/api/records/member-profile/service/42?lang=eng", gotPath)
	require.Equal(t, int64(42), profile.Individual.ID)

	moved, ok := profile.Individual.ParsedMoveDate()
	require.True(t, ok)
	require.Equal(t, "2023-01-15", moved.Format("2006-01-02"))
}

func TestGetErrorStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusForbidden)
	}))

	_, err := client.MemberList(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
	require.Contains(t, err.Error(), "/api/umlu/report/member-list")
}

func TestGetDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>login page</html>`))
	}))

	_, err := client.MemberList(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestVisualMemberList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"spokenName": "Doe Family", "image": {"tokenUrl": "https://photos.example.com/household.jpg"}},
			{"spokenName": "John Doe", "image": {"tokenUrl": "https://photos.example.com/john.jpg"}}
		]`))
	}))

	people, err := client.VisualMemberList(context.Background())
	require.NoError(t, err)
	require.Equal(t, []VisualPerson{{
		Name:     "Doe Family",
		PhotoURL: "https://photos.example.com/john.jpg",
	}}, people)
}

func TestMinisteringNamesOnlyFemales(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/umlu/v1/ministering/data-full":
			w.Write([]byte(`[{
				"name": "Relief Society",
				"companionships": [{
					"ministers": [
						{"name": "Alice", "legacyCmisId": 1},
						{"name": "Bob", "legacyCmisId": 2}
					],
					"assignments": [{"name": "Carol", "legacyCmisId": 3}]
				}]
			}]`))
		case r.URL.Path == "/api/umlu/report/member-list":
			w.Write([]byte(`[
				{"legacyCmisId": 1, "sex": "F"},
				{"legacyCmisId": 2, "sex": "M"},
				{"legacyCmisId": 3, "sex": "F"}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))

	names, err := client.MinisteringNames(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, []string{"Alice", "Carol"}, names)
}
