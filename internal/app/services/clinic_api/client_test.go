package clinic_api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Method   string
	Path     string
	RawPath  string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// newStubClinicAPI answers every request with status and body, and hands the
// received request over the returned channel.
func newStubClinicAPI(t *testing.T, status int, body string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()
	captured := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		captured <- capturedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawPath:  r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     payload,
		}
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestClient(baseUrl string) contracts.ClinicAPIClient {
	return NewClinicApiClient(baseUrl, &http.Client{}, zap.NewNop())
}

func decodeBody(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func TestListSpecialties(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, `["Cardiologia", "Pediatria", "Dermatologia"]`)
	client := newTestClient(server.URL)

	specialties, err := client.ListSpecialties(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Specialty{"Cardiologia", "Pediatria", "Dermatologia"}, specialties, "order must be kept")

	req := <-captured
	assert.Equal(t, constvars.MethodGet, req.Method)
	assert.Equal(t, "/specialties", req.Path)
	assert.Equal(t, constvars.MIMEApplicationJSON, req.Header.Get(constvars.HeaderAccept))
	assert.Empty(t, req.Body)
}

func TestListDoctors(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, `[{"id": 1, "name": "Dra. Ana Souza"}, {"id": "CRM-5521", "name": "Dr. Paulo Lima"}]`)
	client := newTestClient(server.URL + "/api")

	doctors, err := client.ListDoctors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Doctor{
		{ID: models.IntID(1), Name: "Dra. Ana Souza"},
		{ID: models.StringID("CRM-5521"), Name: "Dr. Paulo Lima"},
	}, doctors)
	assert.Equal(t, "/api/doctors", (<-captured).Path)
}

func TestListAvailableSchedules(t *testing.T) {
	t.Run("Single slot with null patient", func(t *testing.T) {
		server, captured := newStubClinicAPI(t, http.StatusOK, `[{"start_time":"09:00","end_time":"09:30","patient_name":null}]`)
		client := newTestClient(server.URL)

		slots, err := client.ListAvailableSchedules(context.Background(), "Cardiologia", models.ID{})

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "09:30", slots[0].EndTime)
		assert.Nil(t, slots[0].PatientName)
		assert.False(t, slots[0].IsBooked())

		req := <-captured
		assert.Equal(t, "/available_schedules/Cardiologia", req.Path)
		assert.Empty(t, req.RawQuery, "crm must be omitted without a doctor")
	})

	t.Run("Doctor filter adds crm", func(t *testing.T) {
		server, captured := newStubClinicAPI(t, http.StatusOK, `[]`)
		client := newTestClient(server.URL)

		slots, err := client.ListAvailableSchedules(context.Background(), "Cardiologia", models.StringID("12345-SP"))

		require.NoError(t, err)
		assert.Empty(t, slots)
		assert.Equal(t, "crm=12345-SP", (<-captured).RawQuery)
	})

	t.Run("Booked slots keep every field", func(t *testing.T) {
		server, _ := newStubClinicAPI(t, http.StatusOK, `[
			{"id": 7, "start_time":"10:00","end_time":"10:30","doctor_id": 3, "patient_name":"Maria Silva","appointment_id": 42},
			{"id": 8, "start_time":"10:30","end_time":"11:00","doctor_id": 3, "patient_name":null}
		]`)
		client := newTestClient(server.URL)

		slots, err := client.ListAvailableSchedules(context.Background(), "Cardiologia", models.IntID(3))

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, models.IntID(7), *slots[0].ID)
		assert.Equal(t, models.IntID(3), *slots[0].DoctorID)
		assert.Equal(t, "Maria Silva", *slots[0].PatientName)
		assert.Equal(t, models.IntID(42), *slots[0].AppointmentID)
		assert.True(t, slots[0].IsBooked())
		assert.Equal(t, "10:30", slots[1].StartTime)
		assert.False(t, slots[1].IsBooked())
	})

	t.Run("Specialty is path escaped", func(t *testing.T) {
		server, captured := newStubClinicAPI(t, http.StatusOK, `[]`)
		client := newTestClient(server.URL)

		_, err := client.ListAvailableSchedules(context.Background(), "Clínica Geral/Adulto", models.ID{})

		require.NoError(t, err)
		req := <-captured
		assert.Equal(t, "/available_schedules/Clínica Geral/Adulto", req.Path)
		assert.Equal(t, "/available_schedules/Cl%C3%ADnica%20Geral%2FAdulto", req.RawPath)
	})

	t.Run("Empty specialty lists every slot", func(t *testing.T) {
		server, captured := newStubClinicAPI(t, http.StatusOK, `[]`)
		client := newTestClient(server.URL)

		_, err := client.ListAvailableSchedules(context.Background(), "", models.ID{})

		require.NoError(t, err)
		assert.Equal(t, "/available_schedules", (<-captured).Path)
	})
}

func TestListPatients(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, `[{"id": 1, "name": "Maria Silva", "phone": "11999990000"}, {"id": 2, "name": "João Santos", "phone": "21988887777"}]`)
	client := newTestClient(server.URL)

	patients, err := client.ListPatients(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Patient{
		{ID: models.IntID(1), Name: "Maria Silva", Phone: "11999990000"},
		{ID: models.IntID(2), Name: "João Santos", Phone: "21988887777"},
	}, patients)
	assert.Equal(t, "/patients", (<-captured).Path)
}

func TestReadOperationsFailures(t *testing.T) {
	reads := map[string]func(client contracts.ClinicAPIClient) (interface{}, error){
		"ListSpecialties": func(client contracts.ClinicAPIClient) (interface{}, error) {
			return client.ListSpecialties(context.Background())
		},
		"ListDoctors": func(client contracts.ClinicAPIClient) (interface{}, error) {
			return client.ListDoctors(context.Background())
		},
		"ListAvailableSchedules": func(client contracts.ClinicAPIClient) (interface{}, error) {
			return client.ListAvailableSchedules(context.Background(), "Cardiologia", models.ID{})
		},
		"ListPatients": func(client contracts.ClinicAPIClient) (interface{}, error) {
			return client.ListPatients(context.Background())
		},
	}

	cases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "Non JSON body", status: http.StatusOK, body: `<html>oops</html>`, wantStatus: constvars.StatusBadGateway},
		{name: "Null body", status: http.StatusOK, body: `null`, wantStatus: constvars.StatusBadGateway},
		{name: "Empty body", status: http.StatusOK, body: ``, wantStatus: constvars.StatusBadGateway},
		{name: "Object instead of array", status: http.StatusOK, body: `{"detail": "not a list"}`, wantStatus: constvars.StatusBadGateway},
		{name: "Server error", status: http.StatusInternalServerError, body: `[]`, wantStatus: constvars.StatusBadGateway},
	}

	for op, call := range reads {
		for _, tc := range cases {
			t.Run(op+"/"+tc.name, func(t *testing.T) {
				server, _ := newStubClinicAPI(t, tc.status, tc.body)

				result, err := call(newTestClient(server.URL))

				require.Error(t, err)
				var customErr *exceptions.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, tc.wantStatus, customErr.StatusCode)
				assert.Nil(t, result, "failure must not come with a partial result")
			})
		}
	}
}

func TestRegisterPatient(t *testing.T) {
	t.Run("200 yields true", func(t *testing.T) {
		server, captured := newStubClinicAPI(t, http.StatusOK, `{"id": 10}`)
		client := newTestClient(server.URL)

		ok, err := client.RegisterPatient(context.Background(), "Maria Silva", "11999990000")

		require.NoError(t, err)
		assert.True(t, ok)

		req := <-captured
		assert.Equal(t, constvars.MethodPost, req.Method)
		assert.Equal(t, "/patients", req.Path)
		assert.Equal(t, constvars.MIMEApplicationJSON, req.Header.Get(constvars.HeaderContentType))
		assert.JSONEq(t, `{"name": "Maria Silva", "phone": "11999990000"}`, string(req.Body))
	})

	t.Run("422 yields false", func(t *testing.T) {
		server, _ := newStubClinicAPI(t, http.StatusUnprocessableEntity, `{"detail": "invalid phone"}`)
		client := newTestClient(server.URL)

		ok, err := client.RegisterPatient(context.Background(), "Maria Silva", "11999990000")

		require.NoError(t, err, "a rejection is not a transport failure")
		assert.False(t, ok)
	})
}

func TestMutatingOperationsStatusPolicy(t *testing.T) {
	mutations := map[string]func(client contracts.ClinicAPIClient) (bool, error){
		"RegisterPatient": func(client contracts.ClinicAPIClient) (bool, error) {
			return client.RegisterPatient(context.Background(), "Maria Silva", "11999990000")
		},
		"SchedulePatientAppointment": func(client contracts.ClinicAPIClient) (bool, error) {
			return client.SchedulePatientAppointment(context.Background(), models.IntID(1), models.IntID(2), "2026-10-20", "09:00")
		},
		"RegisterArrival": func(client contracts.ClinicAPIClient) (bool, error) {
			return client.RegisterArrival(context.Background(), models.IntID(42))
		},
		"RegisterConsultationDetails": func(client contracts.ClinicAPIClient) (bool, error) {
			return client.RegisterConsultationDetails(context.Background(), models.IntID(42), "Gripe", 150, constvars.PaymentMethodCash)
		},
	}

	cases := []struct {
		status int
		body   string
		want   bool
	}{
		{status: http.StatusOK, body: `{"success": false}`, want: true},
		{status: http.StatusOK, body: `not json at all`, want: true},
		{status: http.StatusCreated, body: ``, want: true},
		{status: http.StatusNoContent, body: ``, want: true},
		{status: http.StatusBadRequest, body: `{"success": true}`, want: false},
		{status: http.StatusNotFound, body: `true`, want: false},
		{status: http.StatusUnprocessableEntity, body: ``, want: false},
		{status: http.StatusInternalServerError, body: `{"success": true}`, want: false},
	}

	for op, call := range mutations {
		for _, tc := range cases {
			t.Run(op+"/"+http.StatusText(tc.status), func(t *testing.T) {
				server, _ := newStubClinicAPI(t, tc.status, tc.body)

				ok, err := call(newTestClient(server.URL))

				require.NoError(t, err)
				assert.Equal(t, tc.want, ok, "status %d with body %q", tc.status, tc.body)
			})
		}
	}
}

func TestSchedulePatientAppointment(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, ``)
	client := newTestClient(server.URL)

	ok, err := client.SchedulePatientAppointment(context.Background(), models.IntID(10), models.StringID("CRM-5521"), "2026-10-20", "09:00")

	require.NoError(t, err)
	assert.True(t, ok)

	req := <-captured
	assert.Equal(t, constvars.MethodPost, req.Method)
	assert.Equal(t, "/appointments", req.Path)
	assert.JSONEq(t, `{"patient_id": 10, "doctor_id": "CRM-5521", "date": "2026-10-20", "time": "09:00"}`, string(req.Body))
}

func TestRegisterArrival(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, ``)
	client := newTestClient(server.URL)

	ok, err := client.RegisterArrival(context.Background(), models.IntID(42))

	require.NoError(t, err)
	assert.True(t, ok)

	req := <-captured
	assert.Equal(t, constvars.MethodPatch, req.Method)
	assert.Equal(t, "/appointments/42", req.Path)
	assert.Equal(t, map[string]interface{}{"arrived": true}, decodeBody(t, req.Body))
}

func TestRegisterConsultationDetails(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, ``)
	client := newTestClient(server.URL)

	ok, err := client.RegisterConsultationDetails(context.Background(), models.StringID("apt-9"), "Hipertensão leve", 250.5, constvars.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.True(t, ok)

	req := <-captured
	assert.Equal(t, constvars.MethodPatch, req.Method)
	assert.Equal(t, "/appointments/apt-9", req.Path)
	assert.JSONEq(t, `{"diagnosis": "Hipertensão leve", "amount_paid": 250.5, "payment_method": "Cartão de Crédito"}`, string(req.Body))
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseUrl := server.URL
	server.Close()

	client := newTestClient(baseUrl)
	ctx := context.Background()

	assertTransportError := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientClinicAPIUnavailable, customErr.ClientMessage)
	}

	t.Run("Reads", func(t *testing.T) {
		specialties, err := client.ListSpecialties(ctx)
		assertTransportError(t, err)
		assert.Nil(t, specialties)

		doctors, err := client.ListDoctors(ctx)
		assertTransportError(t, err)
		assert.Nil(t, doctors)

		slots, err := client.ListAvailableSchedules(ctx, "Cardiologia", models.ID{})
		assertTransportError(t, err)
		assert.Nil(t, slots)

		patients, err := client.ListPatients(ctx)
		assertTransportError(t, err)
		assert.Nil(t, patients)
	})

	t.Run("Mutations", func(t *testing.T) {
		ok, err := client.RegisterPatient(ctx, "Maria Silva", "11999990000")
		assertTransportError(t, err)
		assert.False(t, ok)

		ok, err = client.SchedulePatientAppointment(ctx, models.IntID(1), models.IntID(2), "2026-10-20", "09:00")
		assertTransportError(t, err)
		assert.False(t, ok)

		ok, err = client.RegisterArrival(ctx, models.IntID(42))
		assertTransportError(t, err)
		assert.False(t, ok)

		ok, err = client.RegisterConsultationDetails(ctx, models.IntID(42), "Gripe", 100, constvars.PaymentMethodBoleto)
		assertTransportError(t, err)
		assert.False(t, ok)
	})
}

func TestRequestIDIsForwarded(t *testing.T) {
	server, captured := newStubClinicAPI(t, http.StatusOK, `[]`)
	client := newTestClient(server.URL)

	ctx := utils.ContextWithRequestID(context.Background(), "CLMD_SVC_test-id")
	_, err := client.ListDoctors(ctx)

	require.NoError(t, err)
	assert.Equal(t, "CLMD_SVC_test-id", (<-captured).Header.Get(constvars.HeaderXRequestID))
}
