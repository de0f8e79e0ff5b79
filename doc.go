// Package multigrid is a compact toolbox for studying multigrid-style
// numerical methods on one-dimensional grids — grid-transfer operators,
// a Conjugate Gradient solver with Ritz-value tracking, and a discretized
// diffusion model problem to exercise them.
//
// 🚀 What is multigrid?
//
//	A small library that brings together:
//		• Grids: a 1D uniform-grid descriptor with validated coarsening
//		• Transfer: restriction (coarsening) & prolongation matrices
//		• CG-Ritz: Conjugate Gradient on diagonal SPD systems, recording
//		  a Ritz value per iteration for spectral convergence analysis
//		• Diffusion: a discretized diffusion model problem with
//		  closed-form solution and right-hand side for verification
//
// ✨ Why choose multigrid?
//
//   - Pure functions – every operation is deterministic and side-effect free
//   - Explicit errors – sentinel errors, no panics on bad numeric input
//   - Instrumented – the CG loop reports Ritz values, residual norm and
//     iteration count, so non-convergence is observable, never hidden
//   - Small API – a handful of functions, each with a precise contract
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/      — 1D uniform grid descriptor and grid coarsening
//	transfer/  — coarsening & prolongation matrix constructors
//	cg/        — Conjugate Gradient with Ritz-value tracking
//	diffusion/ — discretized diffusion model problem & closed forms
//
// Quick ASCII example, one coarsening step on a 9-point fine grid:
//
//	fine:    x0──x1──x2──x3──x4──x5──x6──x7──x8
//	coarse:  y0──────y1──────y2──────y3
//
//	each yi is the weighted 1-2-1 average of (x[2i], x[2i+1], x[2i+2])/4.
//
// The cmd/mgdemo command ties the pieces together: it prints sample
// operators, solves a diagonal model system and plots the Ritz sequence.
//
//	go get github.com/spetznick/multigrid
package multigrid
