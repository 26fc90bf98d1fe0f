package ieee488_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-visa/ieee488"
	"github.com/arloliu/go-visa/visa"
	"github.com/arloliu/go-visa/visatest"
)

func newTestRM(t *testing.T) *visa.ResourceManager {
	t.Helper()

	drv := visatest.NewDriver()
	drv.Register("TCPIP0::10.0.0.1::5025::SOCKET", visatest.NewInstrument("Acme", "X200", "0042", "1.0"))
	drv.Register("TCPIP0::10.0.0.2::5025::SOCKET", visatest.NewInstrument("Acme", "X200", "0043", "1.0"))
	drv.Register("GPIB0::7::INSTR", visatest.NewInstrument("Initech", "TPS9000", "IT-77", "2.3"))

	rm, err := visa.New(drv)
	require.NoError(t, err)
	t.Cleanup(rm.Close)

	return rm
}

func TestOpenInstrument(t *testing.T) {
	rm := newTestRM(t)

	inst, err := ieee488.OpenInstrument(rm, "GPIB0::7::INSTR", visa.NoLock, visa.After(time.Second), nil)
	require.NoError(t, err)
	defer inst.Close()

	assert.Equal(t, "Initech", inst.Identification().Manufacturer)
	assert.Equal(t, "TPS9000", inst.Identification().Model)
	require.NotNil(t, inst.Session())
}

func TestOpenInstrument_MatchRejected(t *testing.T) {
	rm := newTestRM(t)

	_, err := ieee488.OpenInstrument(rm, "GPIB0::7::INSTR", visa.NoLock, visa.After(time.Second),
		func(id ieee488.Identification) bool { return id.Model == "X200" })
	assert.ErrorIs(t, err, ieee488.ErrInstrumentNotFound)
}

func TestOpenInstrument_UnknownResource(t *testing.T) {
	rm := newTestRM(t)

	_, err := ieee488.OpenInstrument(rm, "GPIB0::99::INSTR", visa.NoLock, visa.After(time.Second), nil)
	assert.ErrorIs(t, err, visa.ErrResourceNotFound)
}

func TestFindInstrument_BySerial(t *testing.T) {
	rm := newTestRM(t)

	inst, err := ieee488.FindInstrument(rm, "TCPIP?*SOCKET", visa.NoLock, visa.After(time.Second),
		func(id ieee488.Identification) bool { return id.Serial == "0043" })
	require.NoError(t, err)
	defer inst.Close()

	assert.Equal(t, "0043", inst.Identification().Serial)
}

func TestFindInstrument_FirstMatchWins(t *testing.T) {
	rm := newTestRM(t)

	inst, err := ieee488.FindInstrument(rm, "TCPIP?*SOCKET", visa.NoLock, visa.After(time.Second), nil)
	require.NoError(t, err)
	defer inst.Close()

	assert.Equal(t, "0042", inst.Identification().Serial, "registration order decides the first match")
}

func TestFindInstrument_NoneAccepted(t *testing.T) {
	rm := newTestRM(t)

	_, err := ieee488.FindInstrument(rm, "TCPIP?*SOCKET", visa.NoLock, visa.After(time.Second),
		func(ieee488.Identification) bool { return false })
	assert.ErrorIs(t, err, ieee488.ErrInstrumentNotFound)
}

func TestFindInstrument_NoResources(t *testing.T) {
	rm := newTestRM(t)

	_, err := ieee488.FindInstrument(rm, "USB?*INSTR", visa.NoLock, visa.After(time.Second), nil)
	assert.ErrorIs(t, err, ieee488.ErrInstrumentNotFound)
}
