package drawablegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawableFilename(t *testing.T) {
	require.Equal(t, "ic_device_unknown.xml", DrawableFilename("DeviceUnknown"))
	require.Equal(t, "ic_play.xml", DrawableFilename("Play"))
	require.Equal(t, "ic_nav_devices.xml", DrawableFilename("IconType::NavDevices"))
}

func TestBuildDrawable(t *testing.T) {
	doc := BuildDrawable([]string{"M 1 2 L 3 4", "M 2 3 h 14 v 20 h -14 Z"})

	want := `<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:width="24dp"
    android:height="24dp"
    android:viewportWidth="24.0"
    android:viewportHeight="24.0"
    android:tint="?attr/colorControlNormal">
    <path
        android:pathData="M 1 2 L 3 4"
        android:strokeColor="#FFFFFF"
        android:strokeWidth="2"
        android:strokeLineCap="round"
        android:strokeLineJoin="round" />
    <path
        android:pathData="M 2 3 h 14 v 20 h -14 Z"
        android:strokeColor="#FFFFFF"
        android:strokeWidth="2"
        android:strokeLineCap="round"
        android:strokeLineJoin="round" />
</vector>
`
	require.Equal(t, want, doc)
}
