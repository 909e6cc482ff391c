// internal/component/player.go
package component

// Intent — логический снимок ввода за тик. Ядро никогда не читает устройства напрямую.
type Intent struct {
	Forward     bool    `json:"forward"`
	Backward    bool    `json:"backward"`
	Left        bool    `json:"left"`
	Right       bool    `json:"right"`
	Jump        bool    `json:"jump"`
	Shoot       bool    `json:"shoot"`
	Reload      bool    `json:"reload"`
	CameraYaw   float64 `json:"camera_yaw"`
	CameraPitch float64 `json:"camera_pitch"`
}

// HasMovement сообщает, запрошено ли горизонтальное движение.
func (in Intent) HasMovement() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}
