// Package convert classifies the conversion, if any, from a source type to a
// target type in a given conversion context.
//
// Key functions:
//   - Classify: conversion kind between two types under a Context
//   - ClassifyArgument: same, honouring constant expressions (assignment context)
//   - Emit: the expression a code generator emits for a classified conversion
package convert
