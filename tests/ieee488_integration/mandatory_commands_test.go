// Package ieee488integration contains integration tests that exercise the
// full stack: resource discovery through a simulated driver, session I/O with
// chunked reads, and the complete IEEE-488.2 mandatory command set.
package ieee488integration

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-visa/ieee488"
	"github.com/arloliu/go-visa/visa"
	"github.com/arloliu/go-visa/visatest"
)

const (
	dmmResource   = "TCPIP0::10.0.0.10::5025::SOCKET"
	scopeResource = "TCPIP0::10.0.0.11::5025::SOCKET"
)

func newBench(t *testing.T) (*visa.ResourceManager, *visatest.Instrument) {
	t.Helper()

	dmm := visatest.NewInstrument("Acme", "DMM-6500", "SN-1001", "1.4.2")
	scope := visatest.NewInstrument("Acme", "SCOPE-3000", "SN-2002", "2.0.0")

	drv := visatest.NewDriver()
	drv.Register(dmmResource, dmm)
	drv.Register(scopeResource, scope)

	rm, err := visa.New(drv)
	require.NoError(t, err)
	t.Cleanup(rm.Close)

	return rm, dmm
}

func TestDiscoverAndIdentify(t *testing.T) {
	rm, _ := newBench(t)

	resources, err := rm.FindResources("TCPIP?*SOCKET")
	require.NoError(t, err)
	require.Equal(t, []string{dmmResource, scopeResource}, resources)

	inst, err := ieee488.FindInstrument(rm, "TCPIP?*SOCKET", visa.NoLock, visa.After(time.Second),
		func(id ieee488.Identification) bool { return id.Model == "SCOPE-3000" })
	require.NoError(t, err)
	defer inst.Close()

	assert.Equal(t, "SN-2002", inst.Identification().Serial)
}

// TestMandatoryCommandLifecycle walks one session through every mandatory
// command the way a power-on setup sequence would.
func TestMandatoryCommandLifecycle(t *testing.T) {
	rm, sim := newBench(t)

	inst, err := ieee488.OpenInstrument(rm, dmmResource, visa.ExclusiveLock, visa.After(time.Second), nil)
	require.NoError(t, err)
	defer inst.Close()

	// A fresh device reports the power-on event; clearing status removes it.
	esr, err := ieee488.StandardEventStatusRegisterQuery(inst)
	require.NoError(t, err)
	assert.True(t, esr.PowerOn())

	require.NoError(t, ieee488.ClearStatus(inst))

	esr, err = ieee488.StandardEventStatusRegisterQuery(inst)
	require.NoError(t, err)
	assert.Zero(t, esr.Value())

	// Arm the event and service request enables and read them back.
	require.NoError(t, ieee488.SetStandardEventStatusEnable(inst, ieee488.ESEOperationComplete|ieee488.ESECommandError))
	ese, err := ieee488.StandardEventStatusEnableQuery(inst)
	require.NoError(t, err)
	assert.True(t, ese.OperationComplete())
	assert.True(t, ese.CommandError())

	require.NoError(t, ieee488.SetServiceRequestEnable(inst, ieee488.SREEventStatus))
	sre, err := ieee488.ServiceRequestEnableQuery(inst)
	require.NoError(t, err)
	assert.True(t, sre.EventStatus())

	// Self test, wait, and operation complete.
	passed, err := ieee488.SelfTestQuery(inst)
	require.NoError(t, err)
	assert.True(t, passed)

	require.NoError(t, ieee488.WaitToContinue(inst))
	require.NoError(t, ieee488.OperationComplete(inst))

	done, err := ieee488.OperationCompleteQuery(inst)
	require.NoError(t, err)
	assert.True(t, done)

	esr, err = ieee488.StandardEventStatusRegisterQuery(inst)
	require.NoError(t, err)
	assert.True(t, esr.OperationComplete())

	// Status byte reflects whatever the device raises.
	sim.SetStatusByte(uint8(ieee488.STBMessageAvailable))
	stb, err := ieee488.ReadStatusByte(inst)
	require.NoError(t, err)
	assert.True(t, stb.MessageAvailable())

	// Reset returns the enables to power-on defaults.
	require.NoError(t, ieee488.Reset(inst))

	ese, err = ieee488.StandardEventStatusEnableQuery(inst)
	require.NoError(t, err)
	assert.Zero(t, ese.Value())

	sre, err = ieee488.ServiceRequestEnableQuery(inst)
	require.NoError(t, err)
	assert.Zero(t, sre.Value())
}

// TestChunkedResponseReassembly drives a response far larger than the
// session's read chunk through a scripted command handler.
func TestChunkedResponseReassembly(t *testing.T) {
	rm, sim := newBench(t)

	var payload strings.Builder
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&payload, "%+.6E,", float64(i)/997.0)
	}
	waveform := strings.TrimSuffix(payload.String(), ",") + "\n"

	sim.SetHandler(func(command string) (string, bool) {
		if command == "CURV?" {
			return waveform, true
		}

		return "", false
	})

	sess, err := rm.OpenSession(dmmResource, visa.NoLock, visa.After(time.Second))
	require.NoError(t, err)
	defer sess.Close()

	response, err := sess.Query("CURV?\n")
	require.NoError(t, err)
	assert.Equal(t, waveform, response)

	metrics := sess.Metrics()
	assert.Equal(t, uint64(1), metrics.QueryCount.Load())
	assert.Greater(t, metrics.ReadChunkCount.Load(), uint64(1), "the response must arrive in several chunks")
	assert.Equal(t, uint64(len(waveform)), metrics.BytesRead.Load())
}

func TestSessionMetricsAccumulate(t *testing.T) {
	rm, _ := newBench(t)

	sess, err := rm.OpenSession(dmmResource, visa.NoLock, visa.After(time.Second))
	require.NoError(t, err)
	defer sess.Close()

	for i := 0; i < 3; i++ {
		_, err := ieee488.IdentificationQuery(sess)
		require.NoError(t, err)
	}
	require.NoError(t, ieee488.ClearStatus(sess))

	metrics := sess.Metrics()
	assert.Equal(t, uint64(4), metrics.WriteCount.Load())
	assert.Equal(t, uint64(3), metrics.ReadCount.Load())
	assert.Equal(t, uint64(3), metrics.QueryCount.Load())
}

func TestFaultInjection(t *testing.T) {
	rm, sim := newBench(t)

	sess, err := rm.OpenSession(dmmResource, visa.NoLock, visa.After(time.Second))
	require.NoError(t, err)
	defer sess.Close()

	sim.FailNextRead(visa.StatusErrorTimeout)
	_, err = ieee488.IdentificationQuery(sess)
	require.ErrorIs(t, err, visa.ErrTimeout)

	// A short write surfaces as a length mismatch before any read happens.
	sim.ShortWriteOnce(2)
	err = ieee488.ClearStatus(sess)

	var mismatch *visa.WriteLengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Written)
	assert.Equal(t, 5, mismatch.Expected)
}

func TestUnknownCommandSetsCommandError(t *testing.T) {
	rm, _ := newBench(t)

	sess, err := rm.OpenSession(dmmResource, visa.NoLock, visa.After(time.Second))
	require.NoError(t, err)
	defer sess.Close()

	require.NoError(t, ieee488.ClearStatus(sess))
	require.NoError(t, sess.Write("BOGUS:CMD\n"))

	esr, err := ieee488.StandardEventStatusRegisterQuery(sess)
	require.NoError(t, err)
	assert.True(t, esr.CommandError())
}
