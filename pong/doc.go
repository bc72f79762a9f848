// Package pong simulates a two-player game of Pong on top of the ecs package.
//
// A Session owns one ecs.Storage holding the ball, both paddles and the camera,
// plus the Arena, Rules, InputAxes and Scoreboard singletons. Each call to
// Session.Step runs one frame in a fixed order:
//
//	InputSystem -> PaddleSystem -> BallMoveSystem -> BallBounceSystem -> ScoreSystem
//
// World coordinates span [0, Arena.Width] x [0, Arena.Height] with y pointing up.
package pong
