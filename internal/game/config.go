package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "drivn - police chase"
)

// Frame stepping.
const MaxFrameDt = 0.1 // physics step cap during frame hitches (seconds)

// Terrain noise. Heights are a sum of three value-noise octaves.
const (
	NoiseScale = 0.02
	OctaveAmp0 = 5.0
	OctaveAmp1 = 2.0
	OctaveAmp2 = 0.5
)

// Terrain classification thresholds (must stay ordered: road < grass).
const (
	RoadMaxHeight  = 0.5
	GrassMaxHeight = 3.0
)

// Chunking. A chunk is ChunkTiles x ChunkTiles quads of TileSize world units.
const (
	ChunkTiles     = 32
	TileSize       = 2.0
	ChunkWorldSize = ChunkTiles * TileSize

	ChunkRadius        = 5 // chunks kept loaded around the player, per axis
	ChunkEvictionSlack = 2 // extra chunks retained beyond ChunkRadius
)

// Car physics.
const (
	CarAccel      = 18.0
	CarBrake      = 25.0
	CarMaxSpeed   = 25.0
	CarFriction   = 4.0
	CarSpeedEps   = 0.1 // below this the car counts as stationary
	CarRideHeight = 0.5 // y offset above sampled terrain

	SteerRate      = 2.2
	SteerRateDrift = 3.5
	DriftTurnRate  = 0.7 // drifting widens the turn radius
	DriftAngleGain = 0.3
	DriftAngleRate = 5.0

	OverspeedDecayRate = 5.0 // pull toward terrain cap when above it
	CarCollisionRadius = 2.5
	CollisionSpeedKeep = 0.2 // speed retained after bumping a building
)

// Police pursuit.
const (
	PoliceTurnRate     = 3.0
	PoliceSpeedRate    = 2.0
	PoliceFarSpeed     = 18.0
	PoliceNearSpeed    = 12.0
	PoliceFarDist      = 30.0
	PoliceEngageDist   = 1.0 // also guards degenerate normalize
	PoliceSpawnPeriod  = 8.0
	PoliceMaxCars      = 5
	PoliceSpawnDist    = 60.0
	PoliceHitDist      = 3.0
	PoliceHitPenalty   = 5.0
	PoliceResetOffsetX = 50.0
	PoliceResetOffsetZ = 50.0
)

// Bullets.
const (
	ShootPeriod      = 2.0
	BulletSpeed      = 30.0
	BulletLifetime   = 3.0
	BulletHitDist    = 2.0
	BulletHitPenalty = 1.0
	BulletMuzzleY    = 1.0
)

// World population, regenerated on every (re)start.
const (
	BuildingCount  = 10
	BuildingSpread = 50.0
	BuildingWidth  = 8.0
	BuildingDepth  = 8.0
	BuildingHeight = 12.0

	PuddleCount     = 20
	PuddleSpread    = 100.0
	PuddleMinRadius = 3.0
	PuddleMaxRadius = 8.0
)

// Chase camera.
const (
	CamDistance = 15.0
	CamHeight   = 6.0
	CamFovDeg   = 60.0
	CamNear     = 0.1
	CamFar      = 1000.0
)

// Engine sound volume targets; smoothing happens in the audio system.
const (
	EngineVolumeDriving = 0.8
	EngineVolumeIdle    = 0.2
	EngineVolumeRate    = 2.0 // exponential approach rate (1/s)
)
