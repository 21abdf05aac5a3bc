package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCAM_Flags(t *testing.T) {
	var cam CAM

	cam = cam.With(CAMWarningsGenerated)
	require.True(t, cam.Has(CAMWarningsGenerated))
	require.False(t, cam.Has(CAMErrorsGenerated))
	require.Equal(t, CAM(0x00020000), cam)

	cam = cam.Set(CAMErrorsGenerated, true)
	require.Equal(t, CAM(0x00030000), cam)
	require.True(t, cam.Has(CAMWarningsGenerated|CAMErrorsGenerated))

	cam = cam.Set(CAMWarningsGenerated, false)
	require.Equal(t, CAM(0x00010000), cam)

	cam = cam.Without(CAMErrorsGenerated)
	require.Equal(t, CAM(0), cam)
}

func TestCAM_Fields(t *testing.T) {
	cam := CAM(0x01806000) // action mode 3, timing 6

	require.Equal(t, uint8(3), cam.ActionMode())
	require.Equal(t, uint8(6), cam.Timing())
}

func TestCAM_IdentifierWords(t *testing.T) {
	require.Equal(t, 0, CAM(0).ControlleeWords())
	require.Equal(t, 1, CAMControlleeEnable.ControlleeWords())
	require.Equal(t, 4, (CAMControlleeEnable | CAMControlleeUUID).ControlleeWords())
	require.Equal(t, 0, CAMControllerUUID.ControllerWords())
	require.Equal(t, 1, CAMControllerEnable.ControllerWords())
	require.Equal(t, 4, (CAMControllerEnable | CAMControllerUUID).ControllerWords())
}
