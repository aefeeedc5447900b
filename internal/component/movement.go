// internal/component/movement.go
package component

// Position — точка в процентах от размера экрана.
// Значения вне [0, 100] лежат за видимой областью.
type Position struct {
	X, Y float64
}

// Trajectory — путь одной кометы. Не меняется после создания.
type Trajectory struct {
	Start    Position
	End      Position
	RawAngle float64 // направление движения по atan2, градусы
	Rotation float64 // RawAngle + поправка ориентации спрайта, [0, 360)
}
